package lib

import (
	"context"
	"os"

	"github.com/stripe/stripe-go/v82"
)

var stripeClient *stripe.Client

func GetStripeClient() *stripe.Client {
	if stripeClient != nil {
		return stripeClient
	}
	apiKey := os.Getenv("STRIPE_SECRET_KEY")
	sc := stripe.NewClient(apiKey)
	stripeClient = sc

	return sc
}

func NewStripeClient(c *stripe.Client) {
	stripeClient = c
}

// CreateDepositPaymentLink creates a one-off payment link for a booking
// deposit. Amounts are USD; Stripe wants cents.
func CreateDepositPaymentLink(amount float64, reference string) (string, error) {
	sc := GetStripeClient()
	price, err := sc.V1Prices.Create(context.Background(), &stripe.PriceCreateParams{
		UnitAmount: stripe.Int64(int64(amount * 100)),
		Currency:   stripe.String(string(stripe.CurrencyUSD)),
		ProductData: &stripe.PriceCreateProductDataParams{
			Name: stripe.String("Booking deposit " + reference),
		},
	})
	if err != nil {
		return "", err
	}
	params := stripe.PaymentLinkCreateParams{
		LineItems: []*stripe.PaymentLinkCreateLineItemParams{
			{
				Price:    stripe.String(price.ID),
				Quantity: stripe.Int64(1),
			},
		},
	}
	paymentLink, err := sc.V1PaymentLinks.Create(context.Background(), &params)
	if err != nil {
		return "", err
	}
	return paymentLink.URL, nil
}
