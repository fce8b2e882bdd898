package impl

import (
	"fmt"
	"strings"
	"time"

	"retrokick/internal/domain/entity"
	"retrokick/internal/domain/service"
)

// orderConfirmationMail builds the mail sent to the shopper after the
// order record is durable.
func orderConfirmationMail(order *entity.Order) *service.MailMessage {
	var b strings.Builder

	fmt.Fprintf(&b, "Thank you for your order, %s!\n\n", order.Shipping.FirstName)
	fmt.Fprintf(&b, "Order ID: %s\n", order.OrderID)
	fmt.Fprintf(&b, "Date: %s\n\n", order.CreatedAt.Format("02 Jan 2006"))

	b.WriteString("Order Details\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "  %s (Size %s) x%d - Rs.%.2f\n",
			item.ProductName, item.Size, item.Quantity, item.UnitPrice*float64(item.Quantity))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Subtotal: Rs.%.2f\n", order.Subtotal)
	if order.ShippingCost == 0 {
		b.WriteString("Shipping: FREE\n")
	} else {
		fmt.Fprintf(&b, "Shipping: Rs.%.2f\n", order.ShippingCost)
	}
	fmt.Fprintf(&b, "Tax (18%%): Rs.%.2f\n", order.Tax)
	fmt.Fprintf(&b, "Total: Rs.%.2f\n\n", order.GrandTotal)

	b.WriteString("Shipping Address\n")
	fmt.Fprintf(&b, "  %s %s\n", order.Shipping.FirstName, order.Shipping.LastName)
	fmt.Fprintf(&b, "  %s\n", order.Shipping.Address)
	fmt.Fprintf(&b, "  %s, %s - %s\n", order.Shipping.City, order.Shipping.State, order.Shipping.Pincode)
	fmt.Fprintf(&b, "  Phone: %s\n", order.Shipping.Phone)

	return &service.MailMessage{
		To:      order.Shipping.Email,
		Subject: fmt.Sprintf("Order Confirmed - RetroKick #%s", order.OrderID),
		Body:    b.String(),
	}
}

// adminOrderNoticeMail builds the new-order mail sent to the store admin.
func adminOrderNoticeMail(order *entity.Order, adminEmail string) *service.MailMessage {
	var b strings.Builder

	fmt.Fprintf(&b, "New order received: %s\n\n", order.OrderID)

	b.WriteString("Customer\n")
	fmt.Fprintf(&b, "  Name: %s %s\n", order.Shipping.FirstName, order.Shipping.LastName)
	fmt.Fprintf(&b, "  Email: %s\n", order.Shipping.Email)
	fmt.Fprintf(&b, "  Phone: %s\n", order.Shipping.Phone)
	fmt.Fprintf(&b, "  Date: %s\n", order.CreatedAt.Format(time.RFC1123))
	fmt.Fprintf(&b, "  Payment: %s\n\n", order.PaymentRef)

	b.WriteString("Shipping Address\n")
	fmt.Fprintf(&b, "  %s\n", order.Shipping.Address)
	fmt.Fprintf(&b, "  %s, %s - %s\n\n", order.Shipping.City, order.Shipping.State, order.Shipping.Pincode)

	b.WriteString("Items\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "  %s | Size %s | x%d | Rs.%.2f\n",
			item.ProductName, item.Size, item.Quantity, item.UnitPrice*float64(item.Quantity))
	}
	fmt.Fprintf(&b, "\nOrder Total: Rs.%.2f\n", order.GrandTotal)

	return &service.MailMessage{
		To:      adminEmail,
		Subject: fmt.Sprintf("New Order Received - RetroKick #%s", order.OrderID),
		Body:    b.String(),
	}
}

// welcomeMail builds the mail sent after a successful signup.
func welcomeMail(user *entity.User) *service.MailMessage {
	body := fmt.Sprintf(
		"Hi %s,\n\nWelcome to RetroKick! Your account is ready.\n\nBrowse the latest drops and retro classics any time.\n",
		user.Name)

	return &service.MailMessage{
		To:      user.Email,
		Subject: "Welcome to RetroKick",
		Body:    body,
	}
}

// loginAlertMail builds the sign-in notification with the client address.
func loginAlertMail(user *entity.User, clientIP string, at time.Time) *service.MailMessage {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour RetroKick account was signed in at %s from IP %s.\n\nIf this wasn't you, change your password right away.\n",
		user.Name, at.Format(time.RFC1123), clientIP)

	return &service.MailMessage{
		To:      user.Email,
		Subject: "New sign-in to your RetroKick account",
		Body:    body,
	}
}
