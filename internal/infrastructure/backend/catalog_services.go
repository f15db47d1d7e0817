package backend

import (
	"context"
	"net/http"
	"net/url"

	"fitmarket/internal/domain/entities"
	"fitmarket/internal/usecase"
)

// Real-mode strategies for the catalog families. Each delegates to the
// backend's REST-ish endpoint map; no client-side retry.

// RemoteWorkoutService implements IWorkoutUseCase against /workouts.

type RemoteWorkoutService struct {
	client *Client
}

var _ usecase.IWorkoutUseCase = (*RemoteWorkoutService)(nil)

func NewRemoteWorkoutService(client *Client) *RemoteWorkoutService {
	return &RemoteWorkoutService{client: client}
}

func (s *RemoteWorkoutService) Create(ctx context.Context, w entities.Workout) (entities.Workout, error) {
	return s.decode(s.client.Post(ctx, "/workouts", w))
}

func (s *RemoteWorkoutService) GetByID(ctx context.Context, id string) (entities.Workout, error) {
	return s.decode(s.client.Get(ctx, "/workouts/"+url.PathEscape(id)))
}

func (s *RemoteWorkoutService) List(ctx context.Context, filter entities.WorkoutFilter) ([]entities.Workout, error) {
	q := url.Values{}
	if filter.PartnerID != "" {
		q.Set("partner_id", filter.PartnerID)
	}
	if filter.StudentID != "" {
		q.Set("student_id", filter.StudentID)
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}

	path := "/workouts"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	env := s.client.Get(ctx, path)
	if err := env.Err(); err != nil {
		return nil, err
	}
	var workouts []entities.Workout
	if err := env.Decode(&workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (s *RemoteWorkoutService) Update(ctx context.Context, id string, cmd usecase.UpdateWorkoutCommand) (entities.Workout, error) {
	body := map[string]any{}
	if cmd.Name != nil {
		body["name"] = *cmd.Name
	}
	if cmd.Description != nil {
		body["description"] = *cmd.Description
	}
	if cmd.Objective != nil {
		body["objective"] = *cmd.Objective
	}
	if cmd.Exercises != nil {
		body["exercises"] = *cmd.Exercises
	}
	return s.decode(s.client.Patch(ctx, "/workouts/"+url.PathEscape(id), body))
}

func (s *RemoteWorkoutService) Delete(ctx context.Context, id string) error {
	env := s.client.Delete(ctx, "/workouts/"+url.PathEscape(id))
	if !env.Success && env.Status == http.StatusNotFound {
		return usecase.ErrWorkoutNotFound
	}
	return env.Err()
}

func (s *RemoteWorkoutService) Assign(ctx context.Context, id, studentID, studentName string) (entities.Workout, error) {
	body := map[string]any{"student_id": studentID, "student_name": studentName}
	return s.decode(s.client.Post(ctx, "/workouts/"+url.PathEscape(id)+"/assign", body))
}

func (s *RemoteWorkoutService) decode(env Envelope) (entities.Workout, error) {
	if !env.Success {
		if env.Status == http.StatusNotFound {
			return entities.Workout{}, usecase.ErrWorkoutNotFound
		}
		return entities.Workout{}, env.Err()
	}
	var w entities.Workout
	if err := env.Decode(&w); err != nil {
		return entities.Workout{}, err
	}
	return w, nil
}

// RemoteAssessmentService implements IAssessmentUseCase against
// /assessments.

type RemoteAssessmentService struct {
	client *Client
}

var _ usecase.IAssessmentUseCase = (*RemoteAssessmentService)(nil)

func NewRemoteAssessmentService(client *Client) *RemoteAssessmentService {
	return &RemoteAssessmentService{client: client}
}

func (s *RemoteAssessmentService) Create(ctx context.Context, a entities.PhysicalAssessment) (entities.PhysicalAssessment, error) {
	return s.decode(s.client.Post(ctx, "/assessments", a))
}

func (s *RemoteAssessmentService) GetByID(ctx context.Context, id string) (entities.PhysicalAssessment, error) {
	return s.decode(s.client.Get(ctx, "/assessments/"+url.PathEscape(id)))
}

func (s *RemoteAssessmentService) List(ctx context.Context, filter entities.AssessmentFilter) ([]entities.PhysicalAssessment, error) {
	q := url.Values{}
	if filter.PartnerID != "" {
		q.Set("partner_id", filter.PartnerID)
	}
	if filter.StudentID != "" {
		q.Set("student_id", filter.StudentID)
	}

	path := "/assessments"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	env := s.client.Get(ctx, path)
	if err := env.Err(); err != nil {
		return nil, err
	}
	var assessments []entities.PhysicalAssessment
	if err := env.Decode(&assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

func (s *RemoteAssessmentService) Update(ctx context.Context, id string, cmd usecase.UpdateAssessmentCommand) (entities.PhysicalAssessment, error) {
	body := map[string]any{}
	if cmd.Weight != nil {
		body["weight"] = *cmd.Weight
	}
	if cmd.Height != nil {
		body["height"] = *cmd.Height
	}
	if cmd.BodyFat != nil {
		body["body_fat"] = *cmd.BodyFat
	}
	if cmd.MuscleMass != nil {
		body["muscle_mass"] = *cmd.MuscleMass
	}
	if cmd.Measurements != nil {
		body["measurements"] = *cmd.Measurements
	}
	if cmd.Notes != nil {
		body["notes"] = *cmd.Notes
	}
	return s.decode(s.client.Patch(ctx, "/assessments/"+url.PathEscape(id), body))
}

func (s *RemoteAssessmentService) Delete(ctx context.Context, id string) error {
	env := s.client.Delete(ctx, "/assessments/"+url.PathEscape(id))
	if !env.Success && env.Status == http.StatusNotFound {
		return usecase.ErrAssessmentNotFound
	}
	return env.Err()
}

func (s *RemoteAssessmentService) HistoryByStudent(ctx context.Context, studentID string) ([]entities.PhysicalAssessment, error) {
	env := s.client.Get(ctx, "/assessments/student/"+url.PathEscape(studentID)+"/history")
	if err := env.Err(); err != nil {
		return nil, err
	}
	var assessments []entities.PhysicalAssessment
	if err := env.Decode(&assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

func (s *RemoteAssessmentService) decode(env Envelope) (entities.PhysicalAssessment, error) {
	if !env.Success {
		if env.Status == http.StatusNotFound {
			return entities.PhysicalAssessment{}, usecase.ErrAssessmentNotFound
		}
		return entities.PhysicalAssessment{}, env.Err()
	}
	var a entities.PhysicalAssessment
	if err := env.Decode(&a); err != nil {
		return entities.PhysicalAssessment{}, err
	}
	return a, nil
}

// RemoteStudentService implements IStudentUseCase against /students.

type RemoteStudentService struct {
	client *Client
}

var _ usecase.IStudentUseCase = (*RemoteStudentService)(nil)

func NewRemoteStudentService(client *Client) *RemoteStudentService {
	return &RemoteStudentService{client: client}
}

func (s *RemoteStudentService) Create(ctx context.Context, st entities.Student) (entities.Student, error) {
	return s.decode(s.client.Post(ctx, "/students", st))
}

func (s *RemoteStudentService) GetByID(ctx context.Context, id string) (entities.Student, error) {
	return s.decode(s.client.Get(ctx, "/students/"+url.PathEscape(id)))
}

func (s *RemoteStudentService) List(ctx context.Context, filter entities.StudentFilter) ([]entities.Student, error) {
	q := url.Values{}
	if filter.PartnerID != "" {
		q.Set("partner_id", filter.PartnerID)
	}
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}

	path := "/students"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	env := s.client.Get(ctx, path)
	if err := env.Err(); err != nil {
		return nil, err
	}
	var students []entities.Student
	if err := env.Decode(&students); err != nil {
		return nil, err
	}
	return students, nil
}

func (s *RemoteStudentService) Update(ctx context.Context, id string, cmd usecase.UpdateStudentCommand) (entities.Student, error) {
	body := map[string]any{}
	if cmd.Name != nil {
		body["name"] = *cmd.Name
	}
	if cmd.Email != nil {
		body["email"] = *cmd.Email
	}
	if cmd.Phone != nil {
		body["phone"] = *cmd.Phone
	}
	if cmd.BirthDate != nil {
		body["birth_date"] = *cmd.BirthDate
	}
	if cmd.Goal != nil {
		body["goal"] = *cmd.Goal
	}
	if cmd.Status != nil {
		body["status"] = *cmd.Status
	}
	return s.decode(s.client.Patch(ctx, "/students/"+url.PathEscape(id), body))
}

func (s *RemoteStudentService) Delete(ctx context.Context, id string) error {
	env := s.client.Delete(ctx, "/students/"+url.PathEscape(id))
	if !env.Success && env.Status == http.StatusNotFound {
		return usecase.ErrStudentNotFound
	}
	return env.Err()
}

func (s *RemoteStudentService) decode(env Envelope) (entities.Student, error) {
	if !env.Success {
		if env.Status == http.StatusNotFound {
			return entities.Student{}, usecase.ErrStudentNotFound
		}
		return entities.Student{}, env.Err()
	}
	var st entities.Student
	if err := env.Decode(&st); err != nil {
		return entities.Student{}, err
	}
	return st, nil
}

// RemoteGymService implements IGymUseCase against /gyms.

type RemoteGymService struct {
	client *Client
}

var _ usecase.IGymUseCase = (*RemoteGymService)(nil)

func NewRemoteGymService(client *Client) *RemoteGymService {
	return &RemoteGymService{client: client}
}

func (s *RemoteGymService) Create(ctx context.Context, g entities.Gym) (entities.Gym, error) {
	return s.decode(s.client.Post(ctx, "/gyms", g))
}

func (s *RemoteGymService) GetByID(ctx context.Context, id string) (entities.Gym, error) {
	return s.decode(s.client.Get(ctx, "/gyms/"+url.PathEscape(id)))
}

func (s *RemoteGymService) List(ctx context.Context, filter entities.GymFilter) ([]entities.Gym, error) {
	q := url.Values{}
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	if filter.Plan != "" {
		q.Set("plan", string(filter.Plan))
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}

	path := "/gyms"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	env := s.client.Get(ctx, path)
	if err := env.Err(); err != nil {
		return nil, err
	}
	var gyms []entities.Gym
	if err := env.Decode(&gyms); err != nil {
		return nil, err
	}
	return gyms, nil
}

func (s *RemoteGymService) Update(ctx context.Context, id string, cmd usecase.UpdateGymCommand) (entities.Gym, error) {
	body := map[string]any{}
	if cmd.Name != nil {
		body["name"] = *cmd.Name
	}
	if cmd.Email != nil {
		body["email"] = *cmd.Email
	}
	if cmd.Phone != nil {
		body["phone"] = *cmd.Phone
	}
	if cmd.Address != nil {
		body["address"] = *cmd.Address
	}
	if cmd.City != nil {
		body["city"] = *cmd.City
	}
	if cmd.State != nil {
		body["state"] = *cmd.State
	}
	if cmd.Plan != nil {
		body["plan"] = *cmd.Plan
	}
	if cmd.Status != nil {
		body["status"] = *cmd.Status
	}
	return s.decode(s.client.Patch(ctx, "/gyms/"+url.PathEscape(id), body))
}

func (s *RemoteGymService) Delete(ctx context.Context, id string) error {
	env := s.client.Delete(ctx, "/gyms/"+url.PathEscape(id))
	if !env.Success && env.Status == http.StatusNotFound {
		return usecase.ErrGymNotFound
	}
	return env.Err()
}

func (s *RemoteGymService) decode(env Envelope) (entities.Gym, error) {
	if !env.Success {
		if env.Status == http.StatusNotFound {
			return entities.Gym{}, usecase.ErrGymNotFound
		}
		return entities.Gym{}, env.Err()
	}
	var g entities.Gym
	if err := env.Decode(&g); err != nil {
		return entities.Gym{}, err
	}
	return g, nil
}
