// Package http implements the REST API for Academia Records Hub.
package http

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/academia-hub/academia-records-hub/internal/application/command"
	"github.com/academia-hub/academia-records-hub/internal/application/query"
	"github.com/academia-hub/academia-records-hub/internal/domain/admission"
	"github.com/academia-hub/academia-records-hub/internal/domain/assessment"
	"github.com/academia-hub/academia-records-hub/internal/domain/group"
	"github.com/academia-hub/academia-records-hub/internal/domain/person"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
	"github.com/academia-hub/academia-records-hub/internal/domain/student"
	"github.com/academia-hub/academia-records-hub/internal/domain/summons"
	"github.com/academia-hub/academia-records-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// REQUEST / RESPONSE HELPERS
// ══════════════════════════════════════════════════════════════════════════════

// decodeJSON parses a JSON request body into dst with a 1MB size cap.
func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(dst)
}

// writeDomainError maps a domain error onto an HTTP status and writes it.
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case shared.IsNotFound(err):
		writeJSONError(w, http.StatusNotFound, "not_found", err.Error())
	case shared.IsAlreadyExists(err):
		writeJSONError(w, http.StatusConflict, "already_exists", err.Error())
	case shared.IsForbidden(err):
		writeJSONError(w, http.StatusForbidden, "forbidden", err.Error())
	case shared.IsValidation(err):
		writeJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
	default:
		s.logger.Error("request failed", logger.Err(err))
		writeJSONError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}

// caller builds the authenticated caller identity from the verified
// token claims. Unauthenticated requests yield a zero caller, which
// fails any role check downstream.
func caller(r *http.Request) person.Caller {
	claims := callerClaims(r.Context())
	if claims == nil {
		return person.Caller{}
	}
	return person.Caller{PersonID: claims.PersonID, Role: claims.Role}
}

// ══════════════════════════════════════════════════════════════════════════════
// RESPONSE SHAPES
// ══════════════════════════════════════════════════════════════════════════════

type applicantResponse struct {
	ID            string     `json:"id"`
	PersonID      string     `json:"person_id"`
	State         string     `json:"state"`
	InterviewDate *time.Time `json:"interview_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func toApplicantResponse(a *admission.Applicant) applicantResponse {
	return applicantResponse{
		ID:            a.ID,
		PersonID:      a.PersonID,
		State:         string(a.State),
		InterviewDate: a.InterviewDate,
		CreatedAt:     a.CreatedAt,
	}
}

type groupResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	GradeLevel string    `json:"grade_level"`
	Capacity   int       `json:"capacity"`
	Lifecycle  string    `json:"lifecycle"`
	TeacherID  string    `json:"teacher_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func toGroupResponse(g *group.Group) groupResponse {
	return groupResponse{
		ID:         g.ID,
		Name:       g.Name,
		GradeLevel: g.GradeLevel.String(),
		Capacity:   g.Capacity,
		Lifecycle:  string(g.Lifecycle),
		TeacherID:  g.TeacherID,
		CreatedAt:  g.CreatedAt,
	}
}

type studentResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	GradeLevel    string `json:"grade_level"`
	CivilRegistry string `json:"civil_registry,omitempty"`
	Status        string `json:"status"`
	GuardianID    string `json:"guardian_id,omitempty"`
	GroupID       string `json:"group_id,omitempty"`
	ApplicantID   string `json:"applicant_id,omitempty"`
}

func toStudentResponse(st *student.Student) studentResponse {
	return studentResponse{
		ID:            st.ID,
		Name:          st.Name,
		Surname:       st.Surname,
		GradeLevel:    st.GradeLevel.String(),
		CivilRegistry: st.CivilRegistry,
		Status:        string(st.Status),
		GuardianID:    st.GuardianID,
		GroupID:       st.GroupID,
		ApplicantID:   st.ApplicantID,
	}
}

type gradeResponse struct {
	ID            string    `json:"id"`
	Value         float64   `json:"value"`
	Period        int       `json:"period"`
	AchievementID string    `json:"achievement_id"`
	StudentID     string    `json:"student_id"`
	TeacherID     string    `json:"teacher_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toGradeResponse(g *assessment.Grade) gradeResponse {
	return gradeResponse{
		ID:            g.ID,
		Value:         g.Value,
		Period:        g.Period.Int(),
		AchievementID: g.AchievementID,
		StudentID:     g.StudentID,
		TeacherID:     g.TeacherID,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

type achievementResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Status      string `json:"status"`
}

func toAchievementResponse(a *assessment.Achievement) achievementResponse {
	return achievementResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Category:    string(a.Category),
		Status:      string(a.Status),
	}
}

type observationResponse struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	StudentID   string    `json:"student_id"`
	TeacherID   string    `json:"teacher_id"`
}

func toObservationResponse(o *assessment.Observation) observationResponse {
	return observationResponse{
		ID:          o.ID,
		Date:        o.Date,
		Description: o.Description,
		Type:        string(o.Type),
		StudentID:   o.StudentID,
		TeacherID:   o.TeacherID,
	}
}

type summonsResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	GuardianIDs  []string  `json:"guardian_ids,omitempty"`
	TeacherIDs   []string  `json:"teacher_ids,omitempty"`
	ApplicantIDs []string  `json:"applicant_ids,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toSummonsResponse(sm *summons.Summons) summonsResponse {
	return summonsResponse{
		ID:           sm.ID,
		Type:         string(sm.Type),
		ScheduledAt:  sm.ScheduledAt,
		Reason:       sm.Reason,
		Status:       string(sm.Status),
		GuardianIDs:  sm.GuardianIDs,
		TeacherIDs:   sm.TeacherIDs,
		ApplicantIDs: sm.ApplicantIDs,
		CreatedAt:    sm.CreatedAt,
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// HEALTH & STATUS HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

// handleRoot serves the root endpoint with basic API information.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	info := map[string]interface{}{
		"name":        "Academia Records Hub API",
		"version":     "v1",
		"description": "REST API for enrollment, groups, assessment, and summonses",
		"endpoints": map[string]string{
			"health":     "/health",
			"applicants": "/api/v1/applicants",
			"groups":     "/api/v1/groups",
			"summonses":  "/api/v1/summonses",
		},
	}

	writeJSON(w, http.StatusOK, info)
}

// handleHealth handles the health check endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.deps.HealthChecker != nil {
		status := s.deps.HealthChecker.Check(r.Context())
		if !status.Healthy {
			writeJSON(w, http.StatusServiceUnavailable, status)
			return
		}
		writeJSON(w, http.StatusOK, status)
		return
	}

	// Default health response
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"uptime":  s.Uptime().String(),
		"version": "v1",
	})
}

// handleReady handles the readiness probe endpoint (for Kubernetes).
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.deps.HealthChecker != nil {
		status := s.deps.HealthChecker.Check(r.Context())
		if !status.Ready {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not_ready",
				"reason": status.Message,
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleLive handles the liveness probe endpoint (for Kubernetes).
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// ══════════════════════════════════════════════════════════════════════════════
// AUTHENTICATION HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

// handleLogin handles POST /api/v1/auth/login
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload")
		return
	}

	session, err := s.deps.AuthService.Login(r.Context(), shared.Email(req.Email), req.Password)
	if err != nil {
		if shared.IsForbidden(err) {
			writeJSONError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
			return
		}
		s.writeDomainError(w, err)
		return
	}

	s.logger.Info("login succeeded", logger.PersonID(session.PersonID))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"person_id":            session.PersonID,
		"name":                 session.Name,
		"role":                 string(session.Role),
		"token":                session.Token,
		"must_change_password": session.MustChangePassword,
	})
}

// handleFirstLogin handles POST /api/v1/auth/first-login
func (s *Server) handleFirstLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email       string `json:"email"`
		Temporary   string `json:"temporary_credential"`
		NewPassword string `json:"new_password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload")
		return
	}

	session, err := s.deps.AuthService.FirstLogin(r.Context(), shared.Email(req.Email), req.Temporary, req.NewPassword)
	if err != nil {
		if shared.IsForbidden(err) {
			writeJSONError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or temporary credential")
			return
		}
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"person_id": session.PersonID,
		"name":      session.Name,
		"role":      string(session.Role),
		"token":     session.Token,
	})
}

// handleChangePassword handles POST /api/v1/auth/password
func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	c := caller(r)
	if c.PersonID == "" {
		writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload")
		return
	}

	if err := s.deps.AuthService.ChangePassword(r.Context(), c.PersonID, req.CurrentPassword, req.NewPassword); err != nil {
		if shared.IsForbidden(err) {
			writeJSONError(w, http.StatusUnauthorized, "invalid_credentials", "Current password does not match")
			return
		}
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "password_changed"})
}

// handleRequestCredential handles POST /api/v1/auth/credentials
//
// Issues (or reissues) a temporary credential for the guardian email.
// The plaintext credential is returned once for out-of-band delivery.
func (s *Server) handleRequestCredential(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload")
		return
	}

	result, err := s.deps.RequestCredentialHandler.Handle(r.Context(), command.RequestTemporaryCredentialCommand{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	// The plaintext credential goes to the response only, never the log.
	s.logger.Info("temporary credential issued",
		logger.ApplicantID(result.Applicant.ID),
		logger.Email(req.Email),
	)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"applicant":            toApplicantResponse(result.Applicant),
		"temporary_credential": result.TemporaryCredential,
	})
}

// ══════════════════════════════════════════════════════════════════════════════
// ADMISSION HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

// handleCreateApplicant handles POST /api/v1/applicants
func (s *Server) handleCreateApplicant(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Children []struct {
			Name          string `json:"name"`
			Surname       string `json:"surname"`
			GradeLevel    string `json:"grade_level"`
			CivilRegistry string `json:"civil_registry"`
		} `json:"children"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload")
		return
	}

	cmd := command.CreateApplicantCommand{Name: req.Name, Email: req.Email}
	for _, c := range req.Children {
		cmd.Children = append(cmd.Children, command.ChildParams{
			Name:          c.Name,
			Surname:       c.Surname,
			GradeLevel:    c.GradeLevel,
			CivilRegistry: c.CivilRegistry,
		})
	}

	result, err := s.deps.CreateApplicantHandler.Handle(r.Context(), cmd)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	students := make([]studentResponse, 0, len(result.Students))
	for _, st := range result.Students {
		students = append(students, toStudentResponse(st))
	}

	s.logger.Info("applicant created",
		logger.ApplicantID(result.Applicant.ID),
		logger.Int("children", len(result.Students)),
	)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"applicant":            toApplicantResponse(result.Applicant),
		"students":             students,
		"temporary_credential": result.TemporaryCredential,
	})
}

// handleListApplicants handles GET /api/v1/applicants
func (s *Server) handleListApplicants(w http.ResponseWriter, r *http.Request) {
	q := query.ListApplicantsQuery{
		State:  getQueryParam(r, "state", ""),
		Limit:  getQueryParamInt(r, "limit", 50),
		Offset: getQueryParamInt(r, "offset", 0),
	}

	result, err := s.deps.ListApplicantsHandler.Handle(r.Context(), q)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleChangeApplicantState handles POST /api/v1/applicants/{id}/state
func (s *Server) handleChangeApplicantState(w http.ResponseWriter, r *http.Request) {
	var req struct {
		State string `json:"state"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload")
		return
	}

	applicant, err := s.deps.ChangeApplicantState.Handle(r.Context(), command.ChangeApplicantStateCommand{
		ApplicantID: r.PathValue("id"),
		NewState:    req.State,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicantResponse(applicant))
}

// handleScheduleInterview handles POST /api/v1/applicants/{id}/interview
func (s *Server) handleScheduleInterview(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date time.Time `json:"date"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload")
		return
	}

	applicant, err := s.deps.ScheduleInterviewHandler.Handle(r.Context(), command.ScheduleInterviewCommand{
		ApplicantID: r.PathValue("id"),
		Date:        req.Date,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicantResponse(applicant))
}

// handleGetPreregistration handles GET /api/v1/applicants/{id}/preregistration
func (s *Server) handleGetPreregistration(w http.ResponseWriter, r *http.Request) {
	result, err := s.deps.GetPreregistrationHandler.Handle(r.Context(), query.GetPreregistrationQuery{
		ApplicantID: r.PathValue("id"),
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleSavePreregistration handles PUT /api/v1/applicants/{id}/preregistration
func (s *Server) handleSavePreregistration(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GuardianName    string `json:"guardian_name"`
		GuardianSurname string `json:"guardian_surname"`
		GuardianPhone   string `json:"guardian_phone"`
		GuardianEmail   string `json:"guardian_email"`

		ChildName     string    `json:"child_name"`
		ChildSurname  string    `json:"child_surname"`
		DesiredGrade  string    `json:"desired_grade"`
		BirthDate     time.Time `json:"birth_date"`
		CivilRegistry string    `json:"civil_registry"`

		Allergies         string `json:"allergies"`
		MedicalConditions string `json:"medical_conditions"`
		Medications       string `json:"medications"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload")
		return
	}

	result, err := s.deps.SavePreregistrationHandler.Handle(r.Context(), command.SavePreregistrationCommand{
		ApplicantID:       r.PathValue("id"),
		GuardianName:      req.GuardianName,
		GuardianSurname:   req.GuardianSurname,
		GuardianPhone:     req.GuardianPhone,
		GuardianEmail:     req.GuardianEmail,
		ChildName:         req.ChildName,
		ChildSurname:      req.ChildSurname,
		DesiredGrade:      req.DesiredGrade,
		BirthDate:         req.BirthDate,
		CivilRegistry:     req.CivilRegistry,
		Allergies:         req.Allergies,
		MedicalConditions: req.MedicalConditions,
		Medications:       req.Medications,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"state":          string(result.State),
		"interview_date": result.InterviewDate,
	})
}

// ══════════════════════════════════════════════════════════════════════════════
// GROUP & STUDENT HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

// handleCreateGroup handles POST /api/v1/groups
func (s *Server) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name       string `json:"name"`
		GradeLevel string `json:"grade_level"`
		Capacity   int    `json:"capacity"`
		TeacherID  string `json:"teacher_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload")
		return
	}

	g, err := s.deps.CreateGroupHandler.Handle(r.Context(), command.CreateGroupCommand{
		Name:       req.Name,
		GradeLevel: req.GradeLevel,
		Capacity:   req.Capacity,
		TeacherID:  req.TeacherID,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toGroupResponse(g))
}

// handleListGroups handles GET /api/v1/groups
func (s *Server) handleListGroups(w http.ResponseWriter, r *http.Request) {
	q := query.ListGroupsQuery{
		Lifecycle: getQueryParam(r, "lifecycle", ""),
		TeacherID: getQueryParam(r, "teacher_id", ""),
		Limit:     getQueryParamInt(r, "limit", 50),
		Offset:    getQueryParamInt(r, "offset", 0),
	}

	result, err := s.deps.ListGroupsHandler.Handle(r.Context(), q)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleGetGroupRoster handles GET /api/v1/groups/{id}/roster
func (s *Server) handleGetGroupRoster(w http.ResponseWriter, r *http.Request) {
	result, err := s.deps.GetGroupRosterHandler.Handle(r.Context(), query.GetGroupRosterQuery{
		GroupID: r.PathValue("id"),
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleConfirmGroup handles POST /api/v1/groups/{id}/confirm
func (s *Server) handleConfirmGroup(w http.ResponseWriter, r *http.Request) {
	g, err := s.deps.ConfirmGroupHandler.Handle(r.Context(), command.ConfirmGroupCommand{
		GroupID: r.PathValue("id"),
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.logger.Info("group confirmed", logger.GroupID(g.ID))
	writeJSON(w, http.StatusOK, toGroupResponse(g))
}

// handleRemoveGroup handles POST /api/v1/groups/{id}/retire
func (s *Server) handleRemoveGroup(w http.ResponseWriter, r *http.Request) {
	g, err := s.deps.RemoveGroupHandler.Handle(r.Context(), command.RemoveGroupCommand{
		GroupID: r.PathValue("id"),
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toGroupResponse(g))
}

// handleAssignStudents handles PUT /api/v1/groups/{id}/students
//
// Replaces the group's student set with the given one.
func (s *Server) handleAssignStudents(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudentIDs []string `json:"student_ids"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload")
		return
	}

	g, err := s.deps.AssignStudentsHandler.Handle(r.Context(), command.AssignStudentsCommand{
		GroupID:    r.PathValue("id"),
		StudentIDs: req.StudentIDs,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toGroupResponse(g))
}

// handleAddStudent handles POST /api/v1/groups/{id}/students
func (s *Server) handleAddStudent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudentID string `json:"student_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload")
		return
	}

	g, err := s.deps.AddStudentHandler.Handle(r.Context(), command.AddStudentCommand{
		GroupID:   r.PathValue("id"),
		StudentID: req.StudentID,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toGroupResponse(g))
}

// handleListStudents handles GET /api/v1/students
func (s *Server) handleListStudents(w http.ResponseWriter, r *http.Request) {
	q := query.ListStudentsQuery{
		GuardianID:  getQueryParam(r, "guardian_id", ""),
		ApplicantID: getQueryParam(r, "applicant_id", ""),
	}

	result, err := s.deps.ListStudentsHandler.Handle(r.Context(), q)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleUnassignStudent handles DELETE /api/v1/students/{id}/group
func (s *Server) handleUnassignStudent(w http.ResponseWriter, r *http.Request) {
	st, err := s.deps.UnassignStudentHandler.Handle(r.Context(), command.UnassignStudentCommand{
		StudentID: r.PathValue("id"),
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toStudentResponse(st))
}

// ══════════════════════════════════════════════════════════════════════════════
// ASSESSMENT HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

// handleRecordGrade handles POST /api/v1/grades
func (s *Server) handleRecordGrade(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudentID     string  `json:"student_id"`
		AchievementID string  `json:"achievement_id"`
		Value         float64 `json:"value"`
		Period        int     `json:"period"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload")
		return
	}

	g, err := s.deps.RecordGradeHandler.Handle(r.Context(), command.RecordGradeCommand{
		Caller:        caller(r),
		StudentID:     req.StudentID,
		AchievementID: req.AchievementID,
		Value:         req.Value,
		Period:        req.Period,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.logger.Info("grade recorded",
		logger.StudentID(g.StudentID),
		logger.GradeValue(g.Value),
		logger.Period(g.Period.Int()),
	)
	writeJSON(w, http.StatusCreated, toGradeResponse(g))
}

// handleUpdateGrade handles PUT /api/v1/grades/{id}
func (s *Server) handleUpdateGrade(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Value  float64 `json:"value"`
		Period int     `json:"period"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload")
		return
	}

	g, err := s.deps.UpdateGradeHandler.Handle(r.Context(), command.UpdateGradeCommand{
		Caller:  caller(r),
		GradeID: r.PathValue("id"),
		Value:   req.Value,
		Period:  req.Period,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toGradeResponse(g))
}

// handleListGrades handles GET /api/v1/students/{id}/grades
func (s *Server) handleListGrades(w http.ResponseWriter, r *http.Request) {
	q := query.ListGradesQuery{
		StudentID: r.PathValue("id"),
		Period:    getQueryParamInt(r, "period", 0),
	}

	result, err := s.deps.ListGradesHandler.Handle(r.Context(), q)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleGetReportCard handles GET /api/v1/students/{id}/report-card
func (s *Server) handleGetReportCard(w http.ResponseWriter, r *http.Request) {
	result, err := s.deps.GetReportCardHandler.Handle(r.Context(), query.GetReportCardQuery{
		StudentID: r.PathValue("id"),
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleCreateAchievement handles POST /api/v1/achievements
func (s *Server) handleCreateAchievement(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Category    string `json:"category"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload")
		return
	}

	a, err := s.deps.AchievementHandler.Create(r.Context(), command.CreateAchievementCommand{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAchievementResponse(a))
}

// handleListAchievements handles GET /api/v1/achievements
func (s *Server) handleListAchievements(w http.ResponseWriter, r *http.Request) {
	result, err := s.deps.ListAchievementsHandler.Handle(r.Context(), query.ListAchievementsQuery{
		Category: getQueryParam(r, "category", ""),
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleUpdateAchievement handles PUT /api/v1/achievements/{id}
func (s *Server) handleUpdateAchievement(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Category    string `json:"category"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload")
		return
	}

	a, err := s.deps.AchievementHandler.Update(r.Context(), command.UpdateAchievementCommand{
		AchievementID: r.PathValue("id"),
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAchievementResponse(a))
}

// handleDeleteAchievement handles DELETE /api/v1/achievements/{id}
func (s *Server) handleDeleteAchievement(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.AchievementHandler.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleRecordObservation handles POST /api/v1/observations
func (s *Server) handleRecordObservation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudentID   string    `json:"student_id"`
		Date        time.Time `json:"date"`
		Description string    `json:"description"`
		Type        string    `json:"type"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload")
		return
	}

	o, err := s.deps.RecordObservationHandler.Handle(r.Context(), command.RecordObservationCommand{
		Caller:      caller(r),
		StudentID:   req.StudentID,
		Date:        req.Date,
		Description: req.Description,
		Type:        req.Type,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toObservationResponse(o))
}

// handleListObservations handles GET /api/v1/observations
func (s *Server) handleListObservations(w http.ResponseWriter, r *http.Request) {
	q := query.ListObservationsQuery{
		StudentID: getQueryParam(r, "student_id", ""),
		TeacherID: getQueryParam(r, "teacher_id", ""),
	}

	result, err := s.deps.ListObservationsHandler.Handle(r.Context(), q)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ══════════════════════════════════════════════════════════════════════════════
// SUMMONS HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

// handleCreateSummons handles POST /api/v1/summonses
func (s *Server) handleCreateSummons(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type         string    `json:"type"`
		ScheduledAt  time.Time `json:"scheduled_at"`
		Reason       string    `json:"reason"`
		GuardianIDs  []string  `json:"guardian_ids"`
		TeacherIDs   []string  `json:"teacher_ids"`
		ApplicantIDs []string  `json:"applicant_ids"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload")
		return
	}

	sm, err := s.deps.CreateSummonsHandler.Handle(r.Context(), command.CreateSummonsCommand{
		Type:         req.Type,
		ScheduledAt:  req.ScheduledAt,
		Reason:       req.Reason,
		GuardianIDs:  req.GuardianIDs,
		TeacherIDs:   req.TeacherIDs,
		ApplicantIDs: req.ApplicantIDs,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.logger.Info("summons created", logger.SummonsID(sm.ID), logger.String("type", string(sm.Type)))
	writeJSON(w, http.StatusCreated, toSummonsResponse(sm))
}

// handleListSummonses handles GET /api/v1/summonses
func (s *Server) handleListSummonses(w http.ResponseWriter, r *http.Request) {
	q := query.ListSummonsesQuery{
		Type:       getQueryParam(r, "type", ""),
		Status:     getQueryParam(r, "status", ""),
		TeacherID:  getQueryParam(r, "teacher_id", ""),
		GuardianID: getQueryParam(r, "guardian_id", ""),
		Limit:      getQueryParamInt(r, "limit", 50),
		Offset:     getQueryParamInt(r, "offset", 0),
	}

	result, err := s.deps.ListSummonsesHandler.Handle(r.Context(), q)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleChangeSummonsStatus handles POST /api/v1/summonses/{id}/status
func (s *Server) handleChangeSummonsStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload")
		return
	}

	sm, err := s.deps.ChangeSummonsStatus.Handle(r.Context(), command.ChangeSummonsStatusCommand{
		SummonsID: r.PathValue("id"),
		NewStatus: req.Status,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSummonsResponse(sm))
}
