package controllers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Lehari1/citypulse/models"
	"github.com/Lehari1/citypulse/store"
)

// ReportStore is the persistence surface the handlers need.
type ReportStore interface {
	Insert(ctx context.Context, r *models.Report) (*models.Report, error)
	List(ctx context.Context, f store.Filter) ([]models.Report, error)
	Get(ctx context.Context, id string) (*models.Report, error)
	Update(ctx context.Context, id string, p store.Patch) (*models.Report, error)
	Resolve(ctx context.Context, id string) (*models.Report, error)
	ToggleUpvote(ctx context.Context, id, userID string) (*models.Report, error)
}

type Reports struct {
	store ReportStore
}

func NewReports(s ReportStore) *Reports {
	return &Reports{store: s}
}

// reportJSON is the body for POST /api/reports when Content-Type: application/json.
// (Form branch reads fields from the form directly.)
type reportJSON struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Urgency     string   `json:"urgency"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
	Address     string   `json:"address"`
	User        string   `json:"user"`
}

func (h *Reports) Create(c *fiber.Ctx) error {
	var (
		r   *models.Report
		err error
	)
	if strings.HasPrefix(c.Get("Content-Type"), "application/json") {
		r, err = parseCreateJSON(c)
	} else {
		r, err = parseCreateForm(c)
	}
	if err != nil {
		return badReq(c, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Context(), 8*time.Second)
	defer cancel()
	created, err := h.store.Insert(ctx, r)
	if err != nil {
		return serverErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func parseCreateJSON(c *fiber.Ctx) (*models.Report, error) {
	var p reportJSON
	if err := c.BodyParser(&p); err != nil {
		return nil, errors.New("invalid JSON")
	}

	var pts []float64
	if p.Lat != nil && p.Lon != nil {
		pts = []float64{*p.Lon, *p.Lat}
	}
	return newReport(p.Title, p.Description, p.Category, p.Urgency, p.Address, p.User, pts)
}

func parseCreateForm(c *fiber.Ctx) (*models.Report, error) {
	return newReport(
		strings.TrimSpace(c.FormValue("title")),
		strings.TrimSpace(c.FormValue("description")),
		strings.TrimSpace(c.FormValue("category")),
		strings.TrimSpace(c.FormValue("urgency")),
		strings.TrimSpace(c.FormValue("address")),
		strings.TrimSpace(c.FormValue("user")),
		coords(c.FormValue("lat"), c.FormValue("lon")),
	)
}

func newReport(title, description, category, urgency, address, user string, pts []float64) (*models.Report, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("missing title")
	}
	if strings.TrimSpace(description) == "" {
		return nil, errors.New("missing description")
	}
	if !models.ValidCategory(category) {
		return nil, errors.New("invalid category")
	}
	if urgency == "" {
		urgency = models.DefaultUrgency
	}
	return &models.Report{
		Title:       title,
		Description: description,
		Category:    category,
		Urgency:     urgency,
		Location: models.Location{
			Type:        "Point",
			Coordinates: pts,
			Address:     address,
		},
		User:      user,
		Status:    models.StatusOpen,
		Upvotes:   0,
		UpvotedBy: []string{},
		Comments:  []models.Comment{},
		Timestamp: time.Now().UTC(),
	}, nil
}

func (h *Reports) List(c *fiber.Ctx) error {
	f := store.Filter{
		City: c.Query("city"),
		User: c.Query("user"),
	}

	ctx, cancel := context.WithTimeout(c.Context(), 8*time.Second)
	defer cancel()
	reports, err := h.store.List(ctx, f)
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(reports)
}

func (h *Reports) Get(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 8*time.Second)
	defer cancel()
	r, err := h.store.Get(ctx, c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(r)
}

// updateJSON mirrors reportJSON for the editable subset.
type updateJSON struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Category    string `json:"category" form:"category"`
	Urgency     string `json:"urgency" form:"urgency"`
}

func (h *Reports) Update(c *fiber.Ctx) error {
	var p updateJSON
	if err := c.BodyParser(&p); err != nil {
		return badReq(c, "invalid body")
	}
	// ignore-falsy: only provided fields change, so validate category
	// only when one was sent
	if p.Category != "" && !models.ValidCategory(p.Category) {
		return badReq(c, "invalid category")
	}

	ctx, cancel := context.WithTimeout(c.Context(), 8*time.Second)
	defer cancel()
	r, err := h.store.Update(ctx, c.Params("id"), store.Patch{
		Title:       strings.TrimSpace(p.Title),
		Description: strings.TrimSpace(p.Description),
		Category:    p.Category,
		Urgency:     strings.TrimSpace(p.Urgency),
	})
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(r)
}

func (h *Reports) Resolve(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 8*time.Second)
	defer cancel()
	r, err := h.store.Resolve(ctx, c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(r)
}

func (h *Reports) Upvote(c *fiber.Ctx) error {
	var body struct {
		UserID string `json:"userId" form:"userId"`
	}
	// tolerate empty or odd bodies; the missing-userId check below covers them
	_ = c.BodyParser(&body)
	userID := strings.TrimSpace(body.UserID)
	if userID == "" {
		return badReq(c, "User ID is required")
	}

	ctx, cancel := context.WithTimeout(c.Context(), 8*time.Second)
	defer cancel()

	r, err := h.store.Get(ctx, c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return serverErr(c, err)
	}
	if r.User != "" && r.User == userID {
		return badReq(c, "You cannot upvote your own report")
	}

	after, err := h.store.ToggleUpvote(ctx, c.Params("id"), userID)
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return serverErr(c, err)
	}

	resp := models.UpvoteResp{
		Upvotes:    after.Upvotes,
		HasUpvoted: after.HasUpvoted(userID),
	}
	if resp.HasUpvoted {
		resp.Message = "Report upvoted"
	} else {
		resp.Message = "Upvote removed"
	}
	return c.JSON(resp)
}
