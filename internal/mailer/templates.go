package mailer

import (
	"fmt"
	"strings"

	"github.com/samaladyasa/spice-and-soul-backend/internal/domain"
)

func resetCodeTemplate(code string) string {
	return fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
        <h2 style="color: #d35400;">Password Reset Request</h2>
        <p>Hello,</p>
        <p>You requested to reset your password for your Spice &amp; Soul account. Please use the code below to proceed:</p>
        <div style="background: #f5f5f5; padding: 20px; border-radius: 8px; text-align: center; margin: 20px 0;">
          <h1 style="color: #d35400; letter-spacing: 5px; margin: 0;">%s</h1>
        </div>
        <p><strong>This code will expire in 1 hour.</strong></p>
        <p>If you didn't request a password reset, please ignore this email.</p>
        <hr style="border: none; border-top: 1px solid #ddd; margin: 20px 0;">
        <p style="color: #666; font-size: 12px;">&copy; 2026 Spice &amp; Soul Restaurant. All rights reserved.</p>
      </div>`, code)
}

func orderConfirmationTemplate(orderID string, items []domain.OrderItem, total float64) string {
	var list strings.Builder
	for _, item := range items {
		fmt.Fprintf(&list, "<li>%s &times; %d = &#8377;%.2f</li>", item.Name, item.Quantity, item.Price*float64(item.Quantity))
	}

	return fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
        <h2 style="color: #d35400;">Order Confirmation</h2>
        <p>Thank you for your order!</p>
        <h3>Order ID: %s</h3>
        <h4>Items Ordered:</h4>
        <ul>%s</ul>
        <h3 style="color: #d35400;">Total: &#8377;%.2f</h3>
        <p>Your order will be delivered soon. Track your order status on our website.</p>
        <hr style="border: none; border-top: 1px solid #ddd; margin: 20px 0;">
        <p style="color: #666; font-size: 12px;">&copy; 2026 Spice &amp; Soul Restaurant. All rights reserved.</p>
      </div>`, orderID, list.String(), total)
}
