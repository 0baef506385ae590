package member

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/leqet/gym-backend/utils"
)

func testApp() *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", uint(1))
		return c.Next()
	})
	return app
}

func TestGetMealsByDateReadsPathSegment(t *testing.T) {
	app := testApp()
	app.Get("/meals/:date", GetMealsByDate)

	// The day travels in the path segment; a malformed one must be
	// rejected even when a well-formed query value is also present.
	req := httptest.NewRequest("GET", "/meals/not-a-date?date=2026-08-29", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("malformed path date: status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}
}

func TestLogMealRejectsNonGramUnits(t *testing.T) {
	utils.InitValidator()
	app := testApp()
	app.Post("/meals", LogMeal)

	body := `{"meal_type":"lunch","food_item_id":1,"quantity":2,"unit":"serving"}`
	req := httptest.NewRequest("POST", "/meals", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("unit=serving: status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}
}
