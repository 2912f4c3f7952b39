package model

// Doctor запись справочника врачей (только чтение)
type Doctor struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Specialty       string  `json:"specialty"`
	Location        string  `json:"location"`
	ExperienceYears int     `json:"experience_years"`
	Rating          float64 `json:"rating"`
	Bio             string  `json:"bio"`
}

// SpecialtyAll значение фильтра "все специальности"
const SpecialtyAll = "all"
