package repository

import (
	"strings"

	"vidtube/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID looks up a user by id.
func (r *UserRepository) GetByID(id string) (*model.User, error) {
	var user model.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUserName looks up a user by handle. Handles are stored lowercased.
func (r *UserRepository) GetByUserName(userName string) (*model.User, error) {
	var user model.User
	err := r.db.Where("user_name = ?", strings.ToLower(userName)).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUserNameOrEmail resolves a login identifier.
func (r *UserRepository) GetByUserNameOrEmail(identifier string) (*model.User, error) {
	var user model.User
	err := r.db.Where("user_name = ? OR email = ?", strings.ToLower(identifier), identifier).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user.
func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

// Update applies the given column updates to a user.
func (r *UserRepository) Update(id string, updates map[string]interface{}) (*model.User, error) {
	result := r.db.Model(&model.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// ExistsByUserName reports whether the handle is taken.
func (r *UserRepository) ExistsByUserName(userName string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("user_name = ?", strings.ToLower(userName)).Count(&count).Error
	return count > 0, err
}

// ExistsByEmail reports whether the email is taken.
func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// GetByIDs batch-loads users.
func (r *UserRepository) GetByIDs(ids []string) ([]model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []model.User
	err := r.db.Where("id IN ?", ids).Find(&users).Error
	return users, err
}

// SetRefreshToken stores the user's current refresh credential ("" clears it).
func (r *UserRepository) SetRefreshToken(id, token string) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).
		Update("refresh_token", token).Error
}
