package controllers

import (
	"strconv"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"

	"github.com/Lehari1/citypulse/models"
)

func badReq(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResp{Msg: msg})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(models.ErrorResp{Msg: "Report not found"})
}

func serverErr(c *fiber.Ctx, err error) error {
	sentry.CaptureException(err)
	return c.Status(fiber.StatusInternalServerError).
		JSON(models.ErrorResp{Msg: "Server error", Error: err.Error()})
}

// coords parses lat/lon strings into a GeoJSON [lng, lat] pair. Absent or
// unparseable values yield nil: the coordinates are simply omitted.
func coords(latStr, lonStr string) []float64 {
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	lon, errLon := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if errLat != nil || errLon != nil {
		return nil
	}
	return []float64{lon, lat}
}
