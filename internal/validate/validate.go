package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"eduhub-client/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Error keys use JSON tag names, matching the form field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

type loginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type registerForm struct {
	FirstName string `json:"first_name" validate:"required,min=2,max=50"`
	LastName  string `json:"last_name" validate:"required,min=2,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      string `json:"role" validate:"required,oneof=student teacher parent admin expert"`
}

type examForm struct {
	Title        string `json:"title" validate:"required"`
	Duration     int    `json:"duration" validate:"required,gt=0"`
	TotalMarks   int    `json:"total_marks" validate:"required,gt=0"`
	PassingMarks int    `json:"passing_marks" validate:"gte=0,ltefield=TotalMarks"`
}

// Login checks credentials before any network call. A non-empty map blocks
// submission; keys are form field names.
func Login(creds models.Credentials) map[string]string {
	return check(loginForm{Email: creds.Email, Password: creds.Password})
}

func Register(req models.RegisterRequest) map[string]string {
	return check(registerForm{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	})
}

func Exam(req models.CreateExamRequest) map[string]string {
	return check(examForm{
		Title:        req.Title,
		Duration:     req.Duration,
		TotalMarks:   req.TotalMarks,
		PassingMarks: req.PassingMarks,
	})
}

func check(form interface{}) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["_"] = err.Error()
		return fields
	}
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Please enter a valid email address"
	case "min":
		if fe.Field() == "password" {
			return "Password must be at least " + fe.Param() + " characters long"
		}
		return "Must be at least " + fe.Param() + " characters"
	case "max":
		return "Must be at most " + fe.Param() + " characters"
	case "oneof":
		return "Must be one of: " + fe.Param()
	case "gt":
		return "Must be greater than " + fe.Param()
	case "ltefield":
		return "Cannot exceed total marks"
	default:
		return "Invalid value"
	}
}
