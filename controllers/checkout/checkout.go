package checkoutControllers

import (
	"errors"
	"net/http"

	"github.com/JamesBarr456/tienda-api/checkout"
	"github.com/JamesBarr456/tienda-api/errs"
	"github.com/JamesBarr456/tienda-api/middleware"
	"github.com/JamesBarr456/tienda-api/services"
	"github.com/JamesBarr456/tienda-api/shipping"
	"github.com/gin-gonic/gin"
)

type SubmitRequest struct {
	Step checkout.Step     `json:"step"`
	Form checkout.FormData `json:"form"`
}

// GET /user/checkout/shipping-rates
func GetShippingRates() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"localities":     shipping.Localities(),
			"pickup_address": shipping.PickupAddress,
			"pickup_phone":   shipping.PickupPhone,
		})
	}
}

// POST /user/checkout/quote
// Validates the form as it stands and returns the derived totals plus
// any field errors, so the client can re-render after every change.
func Quote(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var form checkout.FormData
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := carts.GetActiveCart(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		quote, err := checkout.ComputeQuote(form, cart)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"quote":        quote,
			"field_errors": checkout.Validate(form),
		})
	}
}

// POST /user/checkout
func Submit(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req SubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if req.Step == "" {
			req.Step = checkout.StepPayment
		}

		wizard, err := checkout.WizardAt(req.Step)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		confirmation, err := svc.Submit(userID, wizard, req.Form)
		if err != nil {
			var formErr *checkout.FormInvalidError
			if errors.As(err, &formErr) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":        formErr.Error(),
					"field_errors": formErr.Fields,
				})
				return
			}
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, confirmation)
	}
}

func statusFor(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errs.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
