package httpapi

import (
	"github.com/campusgate/janus/internal/janus/store"
	"github.com/campusgate/janus/internal/janus/types"
)

func studentPayload(rec store.StudentRecord) types.Student {
	return types.Student{
		Name:             rec.Name,
		EnrollmentNumber: rec.EnrollmentNumber,
		Department:       rec.Department,
		MorShift:         rec.MorShift,
		Batch:            rec.Batch,
		Section:          rec.Section,
		Semester:         rec.Semester,
		PhoneNo:          rec.PhoneNo,
		Address:          rec.Address,
	}
}
