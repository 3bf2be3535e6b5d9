package handler

import (
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"kampina/internal/delivery/http/validator"
	domainerrors "kampina/internal/domain/errors"
	"kampina/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const imageField = "image"

// campgroundForm is the raw body of the new and edit forms.
type campgroundForm struct {
	Title        string   `form:"campground[title]"`
	Price        string   `form:"campground[price]"`
	Location     string   `form:"campground[location]"`
	Description  string   `form:"campground[description]"`
	DeleteImages []string `form:"deleteImages"`
}

type campgroundPayload struct {
	Title       string `form:"title" validate:"required,nohtml"`
	Price       string `form:"price" validate:"required,decimal,nonnegative"`
	Location    string `form:"location" validate:"required,nohtml"`
	Description string `form:"description" validate:"required,nohtml"`
}

// bindCampground decodes and validates the campground form, reporting the first violation.
func bindCampground(c echo.Context) (usecase.CampgroundFields, []string, error) {
	var form campgroundForm
	if err := c.Bind(&form); err != nil {
		return usecase.CampgroundFields{}, nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	payload := campgroundPayload{
		Title:       formText(form.Title),
		Price:       formText(form.Price),
		Location:    formText(form.Location),
		Description: formText(form.Description),
	}
	if err := c.Validate(&payload); err != nil {
		return usecase.CampgroundFields{}, nil, err
	}

	price, err := strconv.ParseFloat(payload.Price, 64)
	if err != nil {
		return usecase.CampgroundFields{}, nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	return usecase.CampgroundFields{
		Title:       payload.Title,
		Price:       price,
		Location:    payload.Location,
		Description: payload.Description,
	}, form.DeleteImages, nil
}

type reviewForm struct {
	Rating string `form:"review[rating]"`
	Body   string `form:"review[body]"`
}

type reviewPayload struct {
	Rating *int   `form:"rating" validate:"required,rating"`
	Body   string `form:"body" validate:"required,nohtml"`
}

// bindReview decodes and validates the review form.
func bindReview(c echo.Context) (int, string, error) {
	var form reviewForm
	if err := c.Bind(&form); err != nil {
		return 0, "", errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	payload := reviewPayload{Body: formText(form.Body)}
	if raw := strings.TrimSpace(form.Rating); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil {
			return 0, "", domainerrors.NewValidationError("rating", "rating must be an integer")
		}
		payload.Rating = &rating
	}

	if err := c.Validate(&payload); err != nil {
		return 0, "", err
	}

	return *payload.Rating, payload.Body, nil
}

// formText trims a submitted value and normalizes textarea line endings.
func formText(value string) string {
	return strings.TrimSpace(validator.NormalizeNewlines(value))
}

type registerForm struct {
	Email    string `form:"email" validate:"required,email"`
	Username string `form:"username" validate:"required,nohtml"`
	Password string `form:"password" validate:"required"`
}

type loginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// imageUploads collects the files of the image field. Non-multipart requests carry none.
func imageUploads(c echo.Context) ([]usecase.ImageUpload, error) {
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	files := form.File[imageField]
	uploads := make([]usecase.ImageUpload, 0, len(files))
	for _, fh := range files {
		if fh.Filename == "" && fh.Size == 0 {
			continue
		}
		uploads = append(uploads, usecase.ImageUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(echo.HeaderContentType),
			Open:        opener(fh),
		})
	}

	return uploads, nil
}

func opener(fh *multipart.FileHeader) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		f, err := fh.Open()
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return f, nil
	}
}

// userMessage picks the text shown to the user for a failed form submission.
// Client errors carry their own message; anything else gets the generic one.
func userMessage(err error, fallback string) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < 500 && appErr.Message() != "" {
		return appErr.Message()
	}

	return fallback
}
