// Package policy holds the access rules of the API as pure predicates over
// the acting account and the resource it touches.
package policy

import (
	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the account issuing a request, or an anonymous caller.
type Actor struct {
	UserID        uuid.UUID
	RoleID        int
	Authenticated bool
}

func Anonymous() Actor {
	return Actor{}
}

func NewActor(userID uuid.UUID, roleID int) Actor {
	return Actor{UserID: userID, RoleID: roleID, Authenticated: true}
}

func (a Actor) IsAdmin() bool   { return a.Authenticated && a.RoleID == entity.RoleIDAdmin }
func (a Actor) IsDoctor() bool  { return a.Authenticated && a.RoleID == entity.RoleIDDoctor }
func (a Actor) IsPatient() bool { return a.Authenticated && a.RoleID == entity.RoleIDPatient }

// Is reports whether the actor is the account id.
func (a Actor) Is(id uuid.UUID) bool {
	return a.Authenticated && a.UserID == id
}

// CanAccessAccount allows an account to read and change only itself.
func CanAccessAccount(actor Actor, accountID uuid.UUID) bool {
	return actor.Is(accountID)
}

// CanCreateAccount allows admins to create accounts of any role.
func CanCreateAccount(actor Actor) bool {
	return actor.IsAdmin()
}

func CanCreateDoctor(actor Actor) bool {
	return actor.IsAdmin()
}

// CanManageCatalog covers creating departments and specialties.
func CanManageCatalog(actor Actor) bool {
	return actor.IsAdmin()
}

// CanCreatePatientDetails lets a patient attach details to their own account.
func CanCreatePatientDetails(actor Actor, targetUserID uuid.UUID) bool {
	return actor.IsPatient() && actor.Is(targetUserID)
}

func CanReadPatient(actor Actor, patientUserID uuid.UUID) bool {
	return actor.IsAdmin() || (actor.IsPatient() && actor.Is(patientUserID))
}

func CanListPatients(actor Actor) bool {
	return actor.IsDoctor() || actor.IsAdmin()
}

// CanCreateAppointment allows patients and doctors to book for themselves.
func CanCreateAppointment(actor Actor, patientID, doctorID uuid.UUID) bool {
	switch {
	case actor.IsAdmin():
		return true
	case actor.IsPatient():
		return actor.Is(patientID)
	case actor.IsDoctor():
		return actor.Is(doctorID)
	}
	return false
}

func CanReadAppointment(actor Actor, appt *entity.Appointment) bool {
	return actor.IsAdmin() || actor.Is(appt.PatientID) || actor.Is(appt.DoctorID)
}

// CanTransitionAppointment lets the doctor complete or cancel and the
// patient cancel. Admins may do either.
func CanTransitionAppointment(actor Actor, appt *entity.Appointment, to entity.AppointmentStatus) bool {
	if actor.IsAdmin() {
		return true
	}
	if actor.IsDoctor() && actor.Is(appt.DoctorID) {
		return to == entity.AppointmentStatusCompleted || to == entity.AppointmentStatusCancelled
	}
	if actor.IsPatient() && actor.Is(appt.PatientID) {
		return to == entity.AppointmentStatusCancelled
	}
	return false
}

func CanCreateMedicalRecord(actor Actor, doctorID uuid.UUID) bool {
	return actor.IsAdmin() || (actor.IsDoctor() && actor.Is(doctorID))
}

func CanReadMedicalRecord(actor Actor, record *entity.MedicalRecord) bool {
	return actor.IsAdmin() || actor.Is(record.PatientID) || actor.Is(record.DoctorID)
}

// CanWriteMedicalRecord covers update and delete.
func CanWriteMedicalRecord(actor Actor, record *entity.MedicalRecord) bool {
	return actor.IsAdmin() || (actor.IsDoctor() && actor.Is(record.DoctorID))
}

func CanCreateFeedback(actor Actor, patientID uuid.UUID) bool {
	return actor.IsPatient() && actor.Is(patientID)
}

// CanListFeedback allows patients, whose list is scoped to their own rows.
func CanListFeedback(actor Actor) bool {
	return actor.IsPatient()
}

// CanManageFeedback covers the feedback detail routes.
func CanManageFeedback(actor Actor) bool {
	return actor.IsAdmin()
}

func CanOpenChat(actor Actor) bool {
	return actor.IsPatient()
}

// CanReadChat requires Participants to be loaded.
func CanReadChat(actor Actor, chat *entity.Chat) bool {
	if actor.IsAdmin() || actor.Is(chat.OpenedByID) {
		return true
	}
	return actor.IsDoctor() && chat.HasParticipant(actor.UserID)
}

func CanPostMessage(actor Actor, chat *entity.Chat) bool {
	return actor.IsPatient() && actor.Is(chat.OpenedByID)
}

func CanReadAuditLog(actor Actor) bool {
	return actor.IsAdmin()
}
