package commands

import (
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/universities"
)

type catalogueEntry struct {
	university *universities.University
	formations []*universities.Formation
}

func demoCatalogue(now time.Time) []catalogueEntry {
	deadline := time.Date(now.Year()+1, time.March, 14, 23, 59, 0, 0, time.UTC)
	fee := func(v float64) *float64 { return &v }
	year := func(v int) *int { return &v }
	coord := func(v float64) *float64 { return &v }

	return []catalogueEntry{
		{
			university: &universities.University{
				Name:            "Université Paris-Saclay",
				Description:     "Université de recherche regroupant sciences, ingénierie et médecine.",
				City:            "Orsay",
				Address:         "3 rue Joliot-Curie",
				Type:            universities.TypePublic,
				Website:         "https://www.universite-paris-saclay.fr",
				EstablishedYear: year(2019),
				StudentCount:    48000,
				Rating:          4.6,
				Latitude:        coord(48.7011),
				Longitude:       coord(2.1770),
				Accreditations:  []string{"HCERES"},
			},
			formations: []*universities.Formation{
				{
					Name:                "Licence Informatique",
					Description:         "Fondamentaux de la programmation, des algorithmes et des systèmes.",
					Level:               "Licence",
					Domain:              "Informatique",
					DurationYears:       3,
					TotalPlaces:         180,
					AvailablePlaces:     180,
					Requirements:        "Baccalauréat général, spécialité mathématiques recommandée",
					ApplicationDeadline: &deadline,
					TuitionFee:          fee(175),
					IsActive:            true,
				},
				{
					Name:                "Licence Physique",
					Level:               "Licence",
					Domain:              "Sciences",
					DurationYears:       3,
					TotalPlaces:         120,
					AvailablePlaces:     120,
					ApplicationDeadline: &deadline,
					TuitionFee:          fee(175),
					IsActive:            true,
				},
			},
		},
		{
			university: &universities.University{
				Name:            "Université Claude Bernard Lyon 1",
				Description:     "Université scientifique et de santé de Lyon.",
				City:            "Lyon",
				Address:         "43 boulevard du 11 Novembre 1918",
				Type:            universities.TypePublic,
				Website:         "https://www.univ-lyon1.fr",
				EstablishedYear: year(1971),
				StudentCount:    47000,
				Rating:          4.3,
				Latitude:        coord(45.7797),
				Longitude:       coord(4.8659),
			},
			formations: []*universities.Formation{
				{
					Name:                "PASS Parcours d'accès spécifique santé",
					Level:               "Licence",
					Domain:              "Santé",
					DurationYears:       1,
					TotalPlaces:         1500,
					AvailablePlaces:     1500,
					AdmissionCriteria:   "Dossier scolaire et projet motivé",
					ApplicationDeadline: &deadline,
					TuitionFee:          fee(175),
					IsActive:            true,
				},
				{
					Name:                "Master Informatique",
					Level:               "Master",
					Domain:              "Informatique",
					DurationYears:       2,
					TotalPlaces:         90,
					AvailablePlaces:     90,
					ApplicationDeadline: &deadline,
					TuitionFee:          fee(250),
					IsActive:            true,
				},
			},
		},
		{
			university: &universities.University{
				Name:            "EDHEC Business School",
				Description:     "École de commerce post-bac et post-prépa.",
				City:            "Lille",
				Address:         "24 avenue Gustave Delory",
				Type:            universities.TypePrivate,
				Website:         "https://www.edhec.edu",
				EstablishedYear: year(1906),
				StudentCount:    9000,
				Rating:          4.4,
				Accreditations:  []string{"AACSB", "EQUIS", "AMBA"},
			},
			formations: []*universities.Formation{
				{
					Name:                "Bachelor in Management",
					Level:               "Bachelor",
					Domain:              "Commerce",
					DurationYears:       4,
					TotalPlaces:         400,
					AvailablePlaces:     400,
					ApplicationDeadline: &deadline,
					TuitionFee:          fee(12500),
					IsActive:            true,
				},
			},
		},
	}
}
