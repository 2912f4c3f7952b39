package formatting

import (
	"fmt"

	"github.com/Freeeeeet/docspot/internal/model"
)

// FormatDoctor карточка врача
func FormatDoctor(d *model.Doctor) string {
	return fmt.Sprintf(
		"👨‍⚕️ %s\n"+
			"🩺 %s\n"+
			"📍 %s\n"+
			"🎓 %d years • ⭐ %.1f/5.0\n"+
			"%s",
		d.Name,
		d.Specialty,
		d.Location,
		d.ExperienceYears,
		d.Rating,
		d.Bio,
	)
}
