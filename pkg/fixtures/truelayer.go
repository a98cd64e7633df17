package fixtures

import (
	"context"

	"github.com/getbankmock/bankmock/pkg/engine"
	"github.com/getbankmock/bankmock/pkg/mock"
)

// TrueLayerHappyPath creates a backend with the TrueLayer happy-path
// scenario loaded and active.
func TrueLayerHappyPath(ctx context.Context) (*engine.MockBackend, error) {
	return happyPath(ctx, TrueLayerScenario, "truelayer", trueLayerFixtures())
}

// AddTrueLayerFixtures loads the TrueLayer happy-path mocks into an
// existing scenario.
func AddTrueLayerFixtures(ctx context.Context, b *engine.MockBackend, scenarioName string) error {
	return apply(ctx, b, scenarioName, trueLayerFixtures())
}

func trueLayerFixtures() []fixture {
	return []fixture{
		{mock.Post("/connect/token"), mock.OK(TrueLayerTokenResponse)},
		{mock.Get("/data/v1/accounts"), mock.OK(TrueLayerAccountsResponse)},
		{mock.Get("/data/v1/accounts/{id}/balance"), mock.OK(TrueLayerBalanceResponse)},
		{mock.Get("/data/v1/accounts/{id}/transactions"), mock.OK(TrueLayerTransactionsResponse)},
		{mock.Get("/data/v1/info"), mock.OK(TrueLayerIdentityResponse)},
		{mock.Post("/payments"), mock.Created(TrueLayerPaymentResponse)},
		{mock.Get("/payments/{id}"), mock.OK(TrueLayerPaymentGetResponse)},
	}
}

const TrueLayerTokenResponse = `{
    "access_token": "eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9.test",
    "token_type": "Bearer",
    "expires_in": 3600
}`

const TrueLayerAccountsResponse = `{
    "results": [
        {
            "account_id": "acc_12345",
            "account_type": "TRANSACTION",
            "display_name": "Current Account",
            "currency": "GBP",
            "account_number": {
                "iban": "GB29NWBK60161331926819",
                "swift_bic": "NWBKGB2L",
                "number": "31926819",
                "sort_code": "601613"
            },
            "provider": {
                "provider_id": "ob-monzo",
                "display_name": "Monzo",
                "logo_uri": "https://truelayer.com/logos/monzo.png"
            }
        }
    ],
    "status": "Succeeded"
}`

const TrueLayerBalanceResponse = `{
    "results": [
        {
            "currency": "GBP",
            "available": 1250.50,
            "current": 1300.00,
            "overdraft": 500.00,
            "update_timestamp": "2024-01-15T10:30:00Z"
        }
    ],
    "status": "Succeeded"
}`

const TrueLayerTransactionsResponse = `{
    "results": [
        {
            "transaction_id": "txn_001",
            "timestamp": "2024-01-15T14:30:00Z",
            "description": "Tesco Stores",
            "amount": -45.67,
            "currency": "GBP",
            "transaction_type": "DEBIT",
            "transaction_category": "PURCHASE",
            "merchant_name": "Tesco",
            "running_balance": {
                "currency": "GBP",
                "amount": 1254.33
            }
        },
        {
            "transaction_id": "txn_002",
            "timestamp": "2024-01-14T09:00:00Z",
            "description": "Salary",
            "amount": 3500.00,
            "currency": "GBP",
            "transaction_type": "CREDIT",
            "transaction_category": "INCOME",
            "merchant_name": null
        }
    ],
    "status": "Succeeded"
}`

const TrueLayerIdentityResponse = `{
    "results": [
        {
            "full_name": "John Smith",
            "emails": ["john.smith@example.com"],
            "phones": ["+44 7700 900123"],
            "addresses": [
                {
                    "address": "123 High Street",
                    "city": "London",
                    "state": null,
                    "zip": "SW1A 1AA",
                    "country": "GB"
                }
            ],
            "date_of_birth": "1990-05-15"
        }
    ],
    "status": "Succeeded"
}`

const TrueLayerPaymentResponse = `{
    "id": "pay_12345",
    "resource_token": "rt_12345",
    "status": "authorization_required"
}`

const TrueLayerPaymentGetResponse = `{
    "id": "pay_12345",
    "status": "executed",
    "amount_in_minor": 10000,
    "currency": "GBP",
    "payment_method": {
        "type": "bank_transfer"
    },
    "created_at": "2024-01-15T10:00:00Z"
}`
