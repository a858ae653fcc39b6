package store

import "github.com/daifend/platform/model"

// ListAIModels returns every model, newest-created first.
func (s *Storage) ListAIModels() ([]model.AIModel, error) {
	var models []model.AIModel
	err := s.db.Order("created_at DESC").Find(&models).Error
	return models, err
}

// GetAIModel returns a single model or ErrNotFound.
func (s *Storage) GetAIModel(id uint) (model.AIModel, error) {
	var m model.AIModel
	if err := s.db.First(&m, id).Error; err != nil {
		return model.AIModel{}, translate(err)
	}
	return m, nil
}

func validateAIModel(m *model.AIModel) error {
	if m.Name == "" || m.Version == "" {
		return invalidf("name and version are required")
	}
	if !model.ValidAIModelType(m.Type) {
		return invalidf("type must be one of %v", model.AIModelTypes)
	}
	if !model.ValidAIModelStatus(m.Status) {
		return invalidf("status must be one of %v", model.AIModelStatuses)
	}
	if m.Accuracy != "" && !isDecimal(m.Accuracy) {
		return invalidf("accuracy must be a decimal string")
	}
	if m.BiasScore != "" && !isDecimal(m.BiasScore) {
		return invalidf("biasScore must be a decimal string")
	}
	return nil
}

// CreateAIModel validates and persists a new AI model record. Status defaults
// to "active" when omitted.
func (s *Storage) CreateAIModel(m *model.AIModel) error {
	if m.Status == "" {
		m.Status = "active"
	}
	if err := validateAIModel(m); err != nil {
		return err
	}
	return s.db.Create(m).Error
}

// UpdateAIModel merges a partial update into an existing model record.
func (s *Storage) UpdateAIModel(id uint, updates model.AIModelUpdate) (model.AIModel, error) {
	var m model.AIModel
	if err := s.db.First(&m, id).Error; err != nil {
		return model.AIModel{}, translate(err)
	}

	if updates.Name != "" {
		m.Name = updates.Name
	}
	if updates.Version != "" {
		m.Version = updates.Version
	}
	if updates.Type != "" {
		if !model.ValidAIModelType(updates.Type) {
			return model.AIModel{}, invalidf("type must be one of %v", model.AIModelTypes)
		}
		m.Type = updates.Type
	}
	if updates.Status != "" {
		if !model.ValidAIModelStatus(updates.Status) {
			return model.AIModel{}, invalidf("status must be one of %v", model.AIModelStatuses)
		}
		m.Status = updates.Status
	}
	if updates.Accuracy != "" {
		if !isDecimal(updates.Accuracy) {
			return model.AIModel{}, invalidf("accuracy must be a decimal string")
		}
		m.Accuracy = updates.Accuracy
	}
	if updates.BiasScore != "" {
		if !isDecimal(updates.BiasScore) {
			return model.AIModel{}, invalidf("biasScore must be a decimal string")
		}
		m.BiasScore = updates.BiasScore
	}
	if updates.LastTrainedAt != nil {
		m.LastTrainedAt = updates.LastTrainedAt
	}
	if updates.DeployedAt != nil {
		m.DeployedAt = updates.DeployedAt
	}

	if err := s.db.Save(&m).Error; err != nil {
		return model.AIModel{}, err
	}
	return m, nil
}
