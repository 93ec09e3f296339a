package v1

import "github.com/ssmapp/safety_management_system/internal/models"

// ModelToUserResponse преобразует доменную модель пользователя в DTO для ответа
func ModelToUserResponse(model *models.User) *UserResponse {
	return &UserResponse{
		ID:           model.ID,
		Email:        model.Email,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		Role:         string(model.Role),
		RoleLabel:    model.Role.Label(),
		EmployeeCode: model.EmployeeCode,
		PhoneNumber:  model.PhoneNumber,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// ModelsToUserResponses преобразует слайс моделей в слайс DTO
func ModelsToUserResponses(users []*models.User) []*UserResponse {
	responses := make([]*UserResponse, len(users))
	for i, user := range users {
		responses[i] = ModelToUserResponse(user)
	}
	return responses
}

// ModelToIncidentResponse преобразует доменную модель инцидента в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	photos := model.Photos
	if photos == nil {
		photos = []string{}
	}
	return &IncidentResponse{
		ID:                 model.ID,
		ReporterID:         model.ReporterID,
		ProjectID:          model.ProjectID,
		Type:               string(model.Type),
		TypeLabel:          model.Type.Label(),
		Description:        model.Description,
		Latitude:           model.Location.Latitude,
		Longitude:          model.Location.Longitude,
		Address:            model.Location.Address,
		Photos:             photos,
		Status:             string(model.Status),
		StatusLabel:        model.Status.Label(),
		AssignedTo:         model.AssignedTo,
		ActionsTaken:       model.ActionsTaken,
		PreventiveMeasures: model.PreventiveMeasures,
		ReportedAt:         model.ReportedAt,
		UpdatedAt:          model.UpdatedAt,
		ResolvedAt:         model.ResolvedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, incident := range incidents {
		responses[i] = ModelToIncidentResponse(incident)
	}
	return responses
}

// DTOToProjectModel преобразует DTO создания/обновления в доменную модель
func DTOToProjectModel(dto ProjectRequest) *models.Project {
	return &models.Project{
		Name:        dto.Name,
		Description: dto.Description,
		Location: models.Location{
			Latitude:  dto.Latitude,
			Longitude: dto.Longitude,
			Address:   dto.Address,
		},
		Status:    models.ProjectStatus(dto.Status),
		StartDate: dto.StartDate,
		EndDate:   dto.EndDate,
	}
}

// ModelToProjectResponse преобразует доменную модель объекта в DTO для ответа
func ModelToProjectResponse(model *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Latitude:    model.Location.Latitude,
		Longitude:   model.Location.Longitude,
		Address:     model.Location.Address,
		Status:      string(model.Status),
		StartDate:   model.StartDate,
		EndDate:     model.EndDate,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// ModelsToProjectResponses преобразует слайс моделей в слайс DTO
func ModelsToProjectResponses(projects []*models.Project) []*ProjectResponse {
	responses := make([]*ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = ModelToProjectResponse(project)
	}
	return responses
}

// DTOToTrainingModel преобразует DTO создания/обновления в доменную модель
func DTOToTrainingModel(dto TrainingRequest) *models.Training {
	return &models.Training{
		Title:        dto.Title,
		Description:  dto.Description,
		MaterialURL:  dto.MaterialURL,
		MaterialType: models.MaterialType(dto.MaterialType),
		ValidityDays: dto.ValidityDays,
	}
}

// ModelToTrainingResponse преобразует доменную модель инструктажа в DTO для ответа
func ModelToTrainingResponse(model *models.Training) *TrainingResponse {
	return &TrainingResponse{
		ID:           model.ID,
		Title:        model.Title,
		Description:  model.Description,
		MaterialURL:  model.MaterialURL,
		MaterialType: string(model.MaterialType),
		ValidityDays: model.ValidityDays,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// ModelsToTrainingResponses преобразует слайс моделей в слайс DTO
func ModelsToTrainingResponses(trainings []*models.Training) []*TrainingResponse {
	responses := make([]*TrainingResponse, len(trainings))
	for i, training := range trainings {
		responses[i] = ModelToTrainingResponse(training)
	}
	return responses
}

// ModelToTrainingResultResponse преобразует результат инструктажа в DTO для ответа
func ModelToTrainingResultResponse(model *models.TrainingResult) *TrainingResultResponse {
	return &TrainingResultResponse{
		ID:          model.ID,
		UserID:      model.UserID,
		TrainingID:  model.TrainingID,
		Score:       model.Score,
		Passed:      model.Passed,
		CompletedAt: model.CompletedAt,
		ExpiresAt:   model.ExpiresAt,
	}
}

// ModelsToTrainingResultResponses преобразует слайс результатов в слайс DTO
func ModelsToTrainingResultResponses(results []*models.TrainingResult) []*TrainingResultResponse {
	responses := make([]*TrainingResultResponse, len(results))
	for i, result := range results {
		responses[i] = ModelToTrainingResultResponse(result)
	}
	return responses
}

// DTOToRiskAssessmentModel преобразует DTO создания в доменную модель
func DTOToRiskAssessmentModel(dto CreateRiskAssessmentRequest) *models.RiskAssessment {
	items := make([]models.RiskAssessmentItem, len(dto.Items))
	for i, item := range dto.Items {
		items[i] = models.RiskAssessmentItem{
			Question:    item.Question,
			Answer:      item.Answer,
			Risk:        models.RiskLevel(item.Risk),
			Observation: item.Observation,
		}
	}
	return &models.RiskAssessment{
		ProjectID: dto.ProjectID,
		Items:     items,
		Signature: dto.Signature,
	}
}

// ModelToRiskAssessmentResponse преобразует доменную модель оценки в DTO для ответа
func ModelToRiskAssessmentResponse(model *models.RiskAssessment) *RiskAssessmentResponse {
	items := make([]RiskItemRequest, len(model.Items))
	for i, item := range model.Items {
		items[i] = RiskItemRequest{
			Question:    item.Question,
			Answer:      item.Answer,
			Risk:        string(item.Risk),
			Observation: item.Observation,
		}
	}
	return &RiskAssessmentResponse{
		ID:        model.ID,
		UserID:    model.UserID,
		ProjectID: model.ProjectID,
		Score:     model.Score,
		Items:     items,
		Signature: model.Signature,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// ModelsToRiskAssessmentResponses преобразует слайс оценок в слайс DTO
func ModelsToRiskAssessmentResponses(assessments []*models.RiskAssessment) []*RiskAssessmentResponse {
	responses := make([]*RiskAssessmentResponse, len(assessments))
	for i, assessment := range assessments {
		responses[i] = ModelToRiskAssessmentResponse(assessment)
	}
	return responses
}

// ModelToAttendanceResponse преобразует запись посещаемости в DTO для ответа
func ModelToAttendanceResponse(model *models.Attendance) *AttendanceResponse {
	return &AttendanceResponse{
		ID:          model.ID,
		UserID:      model.UserID,
		ProjectID:   model.ProjectID,
		Date:        model.Date,
		CheckInAt:   model.CheckInAt,
		CheckOutAt:  model.CheckOutAt,
		HoursWorked: model.HoursWorked,
	}
}

// ModelsToAttendanceResponses преобразует слайс записей в слайс DTO
func ModelsToAttendanceResponses(records []*models.Attendance) []*AttendanceResponse {
	responses := make([]*AttendanceResponse, len(records))
	for i, record := range records {
		responses[i] = ModelToAttendanceResponse(record)
	}
	return responses
}

// ModelToNotificationResponse преобразует уведомление в DTO для ответа
func ModelToNotificationResponse(model *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        model.ID,
		Type:      string(model.Type),
		Title:     model.Title,
		Message:   model.Message,
		Read:      model.Read,
		RelatedID: model.RelatedID,
		CreatedAt: model.CreatedAt,
	}
}

// ModelsToNotificationResponses преобразует слайс уведомлений в слайс DTO
func ModelsToNotificationResponses(notifications []*models.Notification) []*NotificationResponse {
	responses := make([]*NotificationResponse, len(notifications))
	for i, notification := range notifications {
		responses[i] = ModelToNotificationResponse(notification)
	}
	return responses
}
