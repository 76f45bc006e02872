package usecase

import (
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/pagination"
	"clinic-booking-api/internal/policy"
)

// actorScope restricts a list to the rows the actor takes part in.
// Admins see everything; anonymous actors are refused.
func actorScope(actor policy.Actor, page pagination.Params) (entity.ScopeFilter, error) {
	scope := entity.ScopeFilter{Limit: page.Limit, Offset: page.Offset()}

	switch {
	case actor.IsAdmin():
	case actor.IsPatient():
		id := actor.UserID
		scope.PatientID = &id
	case actor.IsDoctor():
		id := actor.UserID
		scope.DoctorID = &id
	default:
		return scope, ErrPermissionDenied
	}
	return scope, nil
}
