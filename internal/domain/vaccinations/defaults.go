package vaccinations

// DefaultSchedule es el calendario fijo con el que se siembra cada perfil.
// Calendario infantil estándar del primer año y medio.
func DefaultSchedule() []Record {
	src := []Record{
		{ID: "bcg-birth", Name: "BCG", Age: "birth", Dose: "single dose", Description: "Tuberculosis vaccine, given shortly after birth."},
		{ID: "hepb-birth", Name: "Hepatitis B", Age: "birth", Dose: "1st dose", Description: "First dose of the hepatitis B series."},
		{ID: "hepb-2m", Name: "Hepatitis B", Age: "2 months", Dose: "2nd dose", Description: "Second dose of the hepatitis B series."},
		{ID: "dtap-2m", Name: "DTaP", Age: "2 months", Dose: "1st dose", Description: "Diphtheria, tetanus and pertussis."},
		{ID: "ipv-2m", Name: "Polio (IPV)", Age: "2 months", Dose: "1st dose", Description: "Inactivated poliovirus vaccine."},
		{ID: "hib-2m", Name: "Hib", Age: "2 months", Dose: "1st dose", Description: "Haemophilus influenzae type b."},
		{ID: "pcv-2m", Name: "Pneumococcal (PCV)", Age: "2 months", Dose: "1st dose", Description: "Pneumococcal conjugate vaccine."},
		{ID: "rv-2m", Name: "Rotavirus", Age: "2 months", Dose: "1st dose", Description: "Oral rotavirus vaccine."},
		{ID: "dtap-4m", Name: "DTaP", Age: "4 months", Dose: "2nd dose", Description: "Diphtheria, tetanus and pertussis."},
		{ID: "ipv-4m", Name: "Polio (IPV)", Age: "4 months", Dose: "2nd dose", Description: "Inactivated poliovirus vaccine."},
		{ID: "hib-4m", Name: "Hib", Age: "4 months", Dose: "2nd dose", Description: "Haemophilus influenzae type b."},
		{ID: "pcv-4m", Name: "Pneumococcal (PCV)", Age: "4 months", Dose: "2nd dose", Description: "Pneumococcal conjugate vaccine."},
		{ID: "rv-4m", Name: "Rotavirus", Age: "4 months", Dose: "2nd dose", Description: "Oral rotavirus vaccine."},
		{ID: "dtap-6m", Name: "DTaP", Age: "6 months", Dose: "3rd dose", Description: "Diphtheria, tetanus and pertussis."},
		{ID: "hepb-6m", Name: "Hepatitis B", Age: "6 months", Dose: "3rd dose", Description: "Final dose of the hepatitis B series."},
		{ID: "flu-6m", Name: "Influenza", Age: "6 months", Dose: "yearly", Description: "Seasonal flu vaccine, repeated every year."},
		{ID: "mmr-12m", Name: "MMR", Age: "12 months", Dose: "1st dose", Description: "Measles, mumps and rubella."},
		{ID: "var-12m", Name: "Varicella", Age: "12 months", Dose: "1st dose", Description: "Chickenpox vaccine."},
		{ID: "hepa-12m", Name: "Hepatitis A", Age: "12 months", Dose: "1st dose", Description: "First dose of the hepatitis A series."},
		{ID: "dtap-18m", Name: "DTaP", Age: "18 months", Dose: "4th dose", Description: "Diphtheria, tetanus and pertussis booster."},
	}

	out := make([]Record, len(src))
	for i, r := range src {
		r.Status = StatusPending
		r.Order = i + 1
		out[i] = r
	}
	return out
}
