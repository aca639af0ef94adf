// Package access holds the role/ownership policy shared by every resource.
//
// Project membership (technician, clients) is the only source of grants; requests and
// renditions inherit it from their project. Checks are pure and evaluated per call.
package access

import (
	"errors"

	"fieldops/internal/domain/entities"
)

var ErrForbidden = errors.New("forbidden")

// Denial is a policy rejection with a reason fit for the caller.
type Denial struct {
	Reason string
}

func (d *Denial) Error() string { return d.Reason }

func (d *Denial) Unwrap() error { return ErrForbidden }

func Deny(reason string) error {
	return &Denial{Reason: reason}
}

// Subject is the authenticated caller.
type Subject struct {
	ID   string
	Role entities.Role
}

func (s Subject) IsAdmin() bool { return s.Role == entities.RoleAdmin }

// HasAccess reports whether subjectID with role may see project p.
func HasAccess(p entities.Project, subjectID string, role entities.Role) bool {
	switch role {
	case entities.RoleAdmin:
		return true
	case entities.RoleTechnician:
		return subjectID != "" && p.Technician == subjectID
	case entities.RoleClient:
		return p.HasClient(subjectID)
	default:
		return false
	}
}

func RequireAdmin(s Subject, reason string) error {
	if s.IsAdmin() {
		return nil
	}
	return Deny(reason)
}

func CanAccessProject(p entities.Project, s Subject) error {
	if HasAccess(p, s.ID, s.Role) {
		return nil
	}
	return Deny("you do not have access to this project")
}

// CanAccessRequest grants project members, plus the technician the request is assigned to.
func CanAccessRequest(sr entities.ServiceRequest, p entities.Project, s Subject) error {
	if HasAccess(p, s.ID, s.Role) {
		return nil
	}
	if s.Role == entities.RoleTechnician && sr.AssignedTo != "" && sr.AssignedTo == s.ID {
		return nil
	}
	return Deny("you do not have access to this service request")
}

// CanChangeRequestStatus allows admins and the currently assigned technician.
func CanChangeRequestStatus(sr entities.ServiceRequest, s Subject) error {
	if s.IsAdmin() {
		return nil
	}
	if s.Role == entities.RoleTechnician && sr.AssignedTo != "" && sr.AssignedTo == s.ID {
		return nil
	}
	return Deny("only an admin or the assigned technician can change the status of this request")
}

// CanCreateRendition allows a technician to report on a request assigned to them or, when
// the request is unassigned, on a request of a project they work on.
func CanCreateRendition(sr entities.ServiceRequest, p entities.Project, s Subject) error {
	if s.Role != entities.RoleTechnician {
		return Deny("only technicians can submit renditions")
	}
	if sr.AssignedTo != "" {
		if sr.AssignedTo != s.ID {
			return Deny("you are not authorized to create renditions for this request")
		}
		return nil
	}
	if !HasAccess(p, s.ID, s.Role) {
		return Deny("you are not authorized to create renditions for this request")
	}
	return nil
}

func CanListRenditions(s Subject) error {
	if s.Role == entities.RoleClient {
		return Deny("clients cannot access renditions")
	}
	return nil
}

func CanReadRendition(r entities.Rendition, s Subject) error {
	switch {
	case s.IsAdmin():
		return nil
	case s.Role == entities.RoleClient:
		return Deny("clients cannot access renditions")
	case s.Role == entities.RoleTechnician && r.Technician == s.ID:
		return nil
	}
	return Deny("you do not have access to this rendition")
}

// CanModifyRendition allows the author while the rendition is undecided.
func CanModifyRendition(r entities.Rendition, s Subject) error {
	if s.Role != entities.RoleTechnician || r.Technician != s.ID {
		return Deny("only the technician who created this rendition can modify it")
	}
	if r.IsLocked() {
		return Deny("a rendition that was approved or rejected cannot be modified")
	}
	return nil
}

// CanDeleteRendition allows admins and the author. Approved renditions are never deleted.
func CanDeleteRendition(r entities.Rendition, s Subject) error {
	if !s.IsAdmin() && (s.Role != entities.RoleTechnician || r.Technician != s.ID) {
		return Deny("you do not have permission to delete this rendition")
	}
	if r.Status == entities.RenditionStatusApproved {
		return Deny("an approved rendition cannot be deleted")
	}
	if !s.IsAdmin() && r.IsLocked() {
		return Deny("a rendition that was approved or rejected cannot be modified")
	}
	return nil
}
