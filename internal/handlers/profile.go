package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/yukikurage/employee-management-api/internal/constants"
	"github.com/yukikurage/employee-management-api/internal/dto"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/services"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile returns the profile of an employee.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "employee")
	if !ok {
		return
	}

	employee, err := h.profileService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToProfileDTO(*employee)))
}

// UpdateProfile changes profile fields. It accepts JSON, or a multipart
// form when a profileImage file is uploaded with the fields.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	type UpdateProfileRequest struct {
		FirstName        *string `json:"firstName" form:"firstName"`
		LastName         *string `json:"lastName" form:"lastName"`
		MobileNo         *string `json:"mobileNo" form:"mobileNo"`
		Address          *string `json:"address" form:"address"`
		Department       *string `json:"department" form:"department"`
		Designation      *string `json:"designation" form:"designation"`
		DateOfJoining    *string `json:"dateOfJoining" form:"dateOfJoining"`
		EmergencyContact *string `json:"emergencyContact" form:"emergencyContact"`
		BloodGroup       *string `json:"bloodGroup" form:"bloodGroup"`
		LinkedIn         *string `json:"linkedIn" form:"linkedIn"`
		ProfileImage     *string `json:"profileImage" form:"-"`
	}

	id, ok := parseIDParam(c, "id", "employee")
	if !ok {
		return
	}

	multipart := c.ContentType() == binding.MIMEMultipartPOSTForm

	var req UpdateProfileRequest
	var err error
	if multipart {
		err = c.ShouldBindWith(&req, binding.FormMultipart)
	} else {
		err = c.ShouldBindJSON(&req)
	}
	if err != nil {
		respondBindError(c, err)
		return
	}

	input := services.UpdateProfileInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		MobileNo:         req.MobileNo,
		Address:          req.Address,
		Department:       req.Department,
		Designation:      req.Designation,
		DateOfJoining:    req.DateOfJoining,
		EmergencyContact: req.EmergencyContact,
		BloodGroup:       req.BloodGroup,
		LinkedIn:         req.LinkedIn,
		ProfileImage:     req.ProfileImage,
	}

	var image *services.ImageTarget
	if multipart {
		file, err := c.FormFile(constants.ProfileImageField)
		switch {
		case err == nil:
			image, err = h.profileService.PrepareImage(c.Request.Context(), id, file.Filename, file.Size)
			if err != nil {
				respondServiceError(c, err)
				return
			}
			if err := c.SaveUploadedFile(file, image.DiskPath); err != nil {
				h.discardImage(c, image)
				_ = c.Error(err)
				apierrors.InternalError(c, "Failed to store profile image")
				return
			}
			input.ProfileImage = &image.PublicPath
		case err != http.ErrMissingFile:
			apierrors.BadRequest(c, "Invalid profile image upload")
			return
		}
	}

	employee, err := h.profileService.Update(c.Request.Context(), id, input)
	if err != nil {
		if image != nil {
			h.discardImage(c, image)
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKWithMessage(dto.ToProfileDTO(*employee), "Profile updated successfully"))
}

func (h *ProfileHandler) discardImage(c *gin.Context, image *services.ImageTarget) {
	if err := image.Discard(); err != nil {
		_ = c.Error(err)
	}
}
