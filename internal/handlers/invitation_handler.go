package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/handykonnect/handykonnect-api/internal/audit"
	"github.com/handykonnect/handykonnect-api/internal/httperr"
	"github.com/handykonnect/handykonnect-api/internal/httpresp"
	"github.com/handykonnect/handykonnect-api/internal/mailer"
	"github.com/handykonnect/handykonnect-api/internal/models"
	"github.com/handykonnect/handykonnect-api/internal/validators"
)

const invitationTTL = 7 * 24 * time.Hour

// ======================================================
// HANDLER
// ======================================================

type InvitationHandler struct {
	db     *gorm.DB
	audit  *audit.Dispatcher
	mailer mailer.Mailer
}

func NewInvitationHandler(db *gorm.DB, dispatcher *audit.Dispatcher, m mailer.Mailer) *InvitationHandler {
	return &InvitationHandler{
		db:     db,
		audit:  dispatcher,
		mailer: m,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateInvitationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ======================================================
// CREATE
// ======================================================

func (h *InvitationHandler) Create(c *gin.Context) {
	act := actorFrom(c)

	var req CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A valid email is required.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not appear to be valid.")
		return
	}

	var existing int64
	h.db.Model(&models.Profile{}).
		Where("email = ? AND role = ?", email, "admin").
		Count(&existing)
	if existing > 0 {
		httperr.BadRequest(c, "already_admin", "This email already belongs to an admin.")
		return
	}

	var pending int64
	h.db.Model(&models.AdminInvitation{}).
		Where("invited_email = ? AND status = 'pending' AND expires_at > ?", email, time.Now()).
		Count(&pending)
	if pending > 0 {
		httperr.BadRequest(c, "invitation_pending", "A pending invitation already exists for this email.")
		return
	}

	var inviter models.Profile
	if err := h.db.First(&inviter, act.ID).Error; err != nil {
		httperr.Internal(c, "failed_to_create_invitation", "Could not create invitation.")
		return
	}

	invitation := models.AdminInvitation{
		InvitedEmail: email,
		InvitedBy:    act.ID,
		Status:       "pending",
		ExpiresAt:    time.Now().Add(invitationTTL),
	}

	if err := h.db.Create(&invitation).Error; err != nil {
		httperr.Internal(c, "failed_to_create_invitation", "Could not create invitation.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &act.ID,
		Action:   "admin_invited",
		Entity:   "admin_invitation",
		EntityID: &invitation.ID,
		Metadata: email,
	})

	h.mailer.SendAdminInvitation(email, inviter.FullName)

	c.JSON(201, invitation)
}

// ======================================================
// LIST
// ======================================================

func (h *InvitationHandler) List(c *gin.Context) {
	var invitations []models.AdminInvitation
	if err := h.db.Order("created_at DESC").Find(&invitations).Error; err != nil {
		httperr.Internal(c, "failed_to_list_invitations", "Could not load invitations.")
		return
	}

	httpresp.List(c, invitations)
}
