// Package universities defines the catalogue: universities and the formations they offer.
package universities
