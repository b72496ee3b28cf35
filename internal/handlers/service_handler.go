package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/handykonnect/handykonnect-api/internal/audit"
	"github.com/handykonnect/handykonnect-api/internal/httperr"
	"github.com/handykonnect/handykonnect-api/internal/httpresp"
	"github.com/handykonnect/handykonnect-api/internal/models"
	"github.com/handykonnect/handykonnect-api/internal/storage"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	db       *gorm.DB
	audit    *audit.Dispatcher
	uploader *storage.Uploader
}

func NewServiceHandler(db *gorm.DB, dispatcher *audit.Dispatcher, uploader *storage.Uploader) *ServiceHandler {
	return &ServiceHandler{
		db:       db,
		audit:    dispatcher,
		uploader: uploader,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	DurationMin int     `json:"duration_min" binding:"required,gt=0"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	DurationMin *int     `json:"duration_min"`
	Active      *bool    `json:"active"`
}

// ======================================================
// PUBLIC LIST
// ======================================================

func (h *ServiceHandler) ListActive(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = ?", true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	httpresp.List(c, services)
}

// ======================================================
// ADMIN CRUD
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	act := actorFrom(c)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service data.")
		return
	}

	svc := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Active:      true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &act.ID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	c.JSON(201, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	act := actorFrom(c)
	id := c.Param("id")

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service data.")
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			httperr.BadRequest(c, "invalid_price", "Price must not be negative.")
			return
		}
		svc.Price = *req.Price
	}
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			httperr.BadRequest(c, "invalid_duration", "Duration must be positive.")
			return
		}
		svc.DurationMin = *req.DurationMin
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &act.ID,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	c.JSON(200, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	act := actorFrom(c)
	id := c.Param("id")

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	if err := h.db.Delete(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &act.ID,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	c.JSON(200, gin.H{"deleted": true})
}

// ======================================================
// IMAGE UPLOAD
// ======================================================

func (h *ServiceHandler) UploadImage(c *gin.Context) {
	act := actorFrom(c)
	id := c.Param("id")

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Could not read the uploaded file.")
		return
	}
	defer src.Close()

	data, err := storage.ProcessServiceImage(src)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_image") {
			httperr.BadRequest(c, "invalid_image", "The uploaded file is not a supported image.")
			return
		}
		httperr.Internal(c, "failed_to_process_image", "Could not process the image.")
		return
	}

	key := fmt.Sprintf("services/%d_%d.webp", svc.ID, time.Now().Unix())
	url, err := h.uploader.Upload(c.Request.Context(), key, data, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Could not store the image.")
		return
	}

	svc.ImageURL = url
	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &act.ID,
		Action:   "service_image_uploaded",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	c.JSON(200, gin.H{"image_url": url})
}
