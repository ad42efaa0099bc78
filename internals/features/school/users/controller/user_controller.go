package controller

import (
	"errors"
	"strings"

	userDTO "sekolahku_backend/internals/features/school/users/dto"
	userModel "sekolahku_backend/internals/features/school/users/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/integrity"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

var validate = validator.New()

// CREATE
// POST /users
func (h *UserController) CreateUser(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req userDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.SchoolID = schoolID
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !userModel.ValidRole(req.Role) {
		return fiber.NewError(fiber.StatusBadRequest, "user_role must be headmaster, coordinator, teacher or student")
	}
	if req.Status != nil && !userModel.ValidStatus(*req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "user_status must be active, inactive or leave")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	var m userModel.UserModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&userModel.UserModel{}).
			Where("user_school_id = ? AND lower(user_email) = ? AND user_deleted_at IS NULL", schoolID, req.Email).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check email")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "email already in use in this school")
		}

		m = req.ToModel(string(hashed))
		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to create user")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "user created", userDTO.FromUserModel(m))
}

// GET /users/:id
func (h *UserController) GetUser(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m userModel.UserModel
	if err := h.DB.
		Where("user_id = ? AND user_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch user")
	}

	return helper.JsonOK(c, "user found", userDTO.FromUserModel(m))
}

// GET /users?role=&status=&q=
func (h *UserController) ListUsers(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&userModel.UserModel{}).
		Where("user_school_id = ?", schoolID)

	if role := strings.TrimSpace(c.Query("role")); role != "" {
		tx = tx.Where("user_role = ?", role)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		tx = tx.Where("user_status = ?", status)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		kw := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("(LOWER(user_name) LIKE ? OR LOWER(user_email) LIKE ?)", kw, kw)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count users")
	}

	var rows []userModel.UserModel
	if err := tx.
		Order("user_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch users")
	}

	return helper.JsonList(c, "users found", userDTO.FromUserModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// PUT /users/:id
func (h *UserController) UpdateUser(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req userDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if req.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*req.Email))
		req.Email = &e
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.Role != nil && !userModel.ValidRole(*req.Role) {
		return fiber.NewError(fiber.StatusBadRequest, "user_role must be headmaster, coordinator, teacher or student")
	}
	if req.Status != nil && !userModel.ValidStatus(*req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "user_status must be active, inactive or leave")
	}

	var m userModel.UserModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND user_school_id = ?", id, schoolID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "user not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch user")
		}

		if req.Email != nil && *req.Email != m.UserEmail {
			var cnt int64
			if err := tx.Model(&userModel.UserModel{}).
				Where("user_school_id = ? AND lower(user_email) = ? AND user_id <> ? AND user_deleted_at IS NULL",
					schoolID, *req.Email, id).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "failed to check email")
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "email already in use in this school")
			}
		}

		req.Apply(&m)
		if err := tx.Model(&userModel.UserModel{}).
			Where("user_id = ? AND user_school_id = ?", id, schoolID).
			Updates(map[string]interface{}{
				"user_name":   m.UserName,
				"user_email":  m.UserEmail,
				"user_role":   m.UserRole,
				"user_status": m.UserStatus,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to update user")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonUpdated(c, "user updated", userDTO.FromUserModel(m))
}

// DELETE /users/:id
// Cascade order: the teacher record first (with its junctions), then every
// assignment where the user acts as coordinator, then the session references
// to any removed junction.
func (h *UserController) DeleteUser(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m userModel.UserModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND user_school_id = ?", id, schoolID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "user not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch user")
		}

		if err := integrity.Default().Delete(integrity.NewGormStore(tx), integrity.TypeUser, schoolID, id); err != nil {
			if errors.Is(err, integrity.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "user not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to delete user")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonDeleted(c, "user deleted", userDTO.FromUserModel(m))
}
