package models

type Doctor struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Specialty       string   `json:"specialty"`
	ExperienceYears int      `json:"experienceYears"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"reviewCount"`
	Bio             string   `json:"bio"`
	Fee             int      `json:"fee"` // minor currency units
	ImageURL        string   `json:"imageUrl"`
	Specializations []string `json:"specializations"`
}

// DefaultRoster returns the clinic's fixed list of practitioners.
func DefaultRoster() []Doctor {
	return []Doctor{
		{
			ID:              1,
			Name:            "Dr. Abdul Rehman",
			Specialty:       "Internal Medicine",
			ExperienceYears: 15,
			Rating:          4.9,
			ReviewCount:     127,
			Bio:             "Specializes in respiratory infections, general internal medicine, and preventive care. Excellent track record with viral infections and symptom management.",
			Fee:             12000,
			ImageURL:        "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?ixlib=rb-4.0.3&auto=format&fit=crop&w=120&h=120",
			Specializations: []string{"Respiratory Care", "Internal Medicine", "Preventive Care"},
		},
		{
			ID:              2,
			Name:            "Dr. SARA",
			Specialty:       "Family Medicine",
			ExperienceYears: 12,
			Rating:          4.7,
			ReviewCount:     89,
			Bio:             "Comprehensive family medicine with focus on holistic care and patient education. Experienced in treating common illnesses and wellness management.",
			Fee:             10000,
			ImageURL:        "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?ixlib=rb-4.0.3&auto=format&fit=crop&w=120&h=120",
			Specializations: []string{"Family Medicine", "Wellness Care"},
		},
		{
			ID:              3,
			Name:            "Dr. Ahmed",
			Specialty:       "Pulmonology",
			ExperienceYears: 20,
			Rating:          4.8,
			ReviewCount:     156,
			Bio:             "Specialist in lung and respiratory system disorders. Expert in treating breathing difficulties, chronic cough, and respiratory infections.",
			Fee:             15000,
			ImageURL:        "https://images.unsplash.com/photo-1582750433449-648ed127bb54?ixlib=rb-4.0.3&auto=format&fit=crop&w=120&h=120",
			Specializations: []string{"Pulmonology", "Respiratory Care"},
		},
		{
			ID:              4,
			Name:            "Dr. haris",
			Specialty:       "Cardiology",
			ExperienceYears: 18,
			Rating:          4.9,
			ReviewCount:     203,
			Bio:             "Heart specialist with expertise in cardiovascular diseases, chest pain evaluation, and cardiac preventive care.",
			Fee:             18000,
			ImageURL:        "https://images.unsplash.com/photo-1594824694996-639a8b70a788?ixlib=rb-4.0.3&auto=format&fit=crop&w=120&h=120",
			Specializations: []string{"Cardiology", "Chest Pain", "Heart Disease"},
		},
		{
			ID:              5,
			Name:            "Dr. Mahad",
			Specialty:       "Neurology",
			ExperienceYears: 16,
			Rating:          4.6,
			ReviewCount:     94,
			Bio:             "Neurologist specializing in headaches, migraines, and neurological disorders. Expert in brain and nervous system conditions.",
			Fee:             16000,
			ImageURL:        "https://images.unsplash.com/photo-1607990281513-2c110a25bd8c?ixlib=rb-4.0.3&auto=format&fit=crop&w=120&h=120",
			Specializations: []string{"Neurology", "Headaches", "Migraines"},
		},
	}
}
