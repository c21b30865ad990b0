package compass

type Company struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Roles       []string `json:"roles"`
}

var companies = []Company{
	{
		Name:        "TechForGood Inc.",
		Category:    "Social Impact Tech",
		Description: "Building technology solutions for environmental and social challenges",
		Keywords:    []string{"impact", "technology", "innovation", "problem-solving"},
		Roles:       []string{"Software Developer", "Product Manager", "UX Designer", "Data Analyst"},
	},
	{
		Name:        "Creative Studios Co.",
		Category:    "Design & Media",
		Description: "Award-winning creative agency working with brands to tell compelling stories",
		Keywords:    []string{"creative", "design", "storytelling", "collaboration"},
		Roles:       []string{"Graphic Designer", "Content Creator", "Art Director", "Brand Strategist"},
	},
	{
		Name:        "Growth Dynamics",
		Category:    "Business Consulting",
		Description: "Helping startups and scale-ups optimize their operations and growth strategies",
		Keywords:    []string{"business", "strategy", "analysis", "growth"},
		Roles:       []string{"Business Analyst", "Strategy Consultant", "Operations Manager"},
	},
	{
		Name:        "EduTech Innovations",
		Category:    "Education Technology",
		Description: "Revolutionizing learning through accessible, engaging educational platforms",
		Keywords:    []string{"education", "learning", "impact", "technology"},
		Roles:       []string{"Learning Experience Designer", "Curriculum Developer", "EdTech Product Manager"},
	},
	{
		Name:        "HealthFirst Solutions",
		Category:    "Healthcare Tech",
		Description: "Making healthcare more accessible and efficient through digital solutions",
		Keywords:    []string{"healthcare", "impact", "technology", "helping"},
		Roles:       []string{"Health Informatics Specialist", "Product Designer", "Clinical Data Analyst"},
	},
	{
		Name:        "Sustainable Ventures",
		Category:    "Green Business",
		Description: "Building sustainable business solutions for a better planet",
		Keywords:    []string{"environment", "sustainability", "impact", "innovation"},
		Roles:       []string{"Sustainability Consultant", "Green Product Developer", "ESG Analyst"},
	},
}

// Companies returns a copy of the company registry in registry order.
func Companies() []Company {
	out := make([]Company, len(companies))
	for i, c := range companies {
		c.Keywords = append([]string(nil), c.Keywords...)
		c.Roles = append([]string(nil), c.Roles...)
		out[i] = c
	}
	return out
}

// FindCompany looks a company up by its exact name.
func FindCompany(list []Company, name string) (Company, bool) {
	for _, c := range list {
		if c.Name == name {
			return c, true
		}
	}
	return Company{}, false
}
