package fixtures

import (
	"context"

	"github.com/getbankmock/bankmock/pkg/engine"
	"github.com/getbankmock/bankmock/pkg/mock"
)

// PlaidHappyPath creates a backend with the Plaid happy-path scenario
// loaded and active.
func PlaidHappyPath(ctx context.Context) (*engine.MockBackend, error) {
	return happyPath(ctx, PlaidScenario, "plaid", plaidFixtures())
}

// AddPlaidFixtures loads the Plaid happy-path mocks into an existing
// scenario.
func AddPlaidFixtures(ctx context.Context, b *engine.MockBackend, scenarioName string) error {
	return apply(ctx, b, scenarioName, plaidFixtures())
}

// PlaidErrorScenario creates a backend whose active scenario answers
// /accounts/get with Plaid's ITEM_LOGIN_REQUIRED error.
func PlaidErrorScenario(ctx context.Context) (*engine.MockBackend, error) {
	b := engine.NewInMemory()
	if _, err := b.CreateScenario(ctx, mock.NewScenario("plaid_error", "plaid")); err != nil {
		return nil, err
	}
	_, _, err := b.AddMock(ctx, "plaid_error",
		mock.Post("/accounts/get"),
		mock.BadRequest(PlaidItemLoginRequiredError))
	if err != nil {
		return nil, err
	}
	if err := b.ActivateScenario(ctx, "plaid_error"); err != nil {
		return nil, err
	}
	return b, nil
}

// PlaidRateLimitedScenario creates a backend whose active scenario
// answers /accounts/get with a 429 rate-limit error.
func PlaidRateLimitedScenario(ctx context.Context) (*engine.MockBackend, error) {
	b := engine.NewInMemory()
	if _, err := b.CreateScenario(ctx, mock.NewScenario("plaid_rate_limited", "plaid")); err != nil {
		return nil, err
	}
	_, _, err := b.AddMock(ctx, "plaid_rate_limited",
		mock.Post("/accounts/get"),
		mock.OK(PlaidRateLimitError).WithStatus(429))
	if err != nil {
		return nil, err
	}
	if err := b.ActivateScenario(ctx, "plaid_rate_limited"); err != nil {
		return nil, err
	}
	return b, nil
}

func plaidFixtures() []fixture {
	return []fixture{
		{mock.Post("/link/token/create"), mock.OK(PlaidLinkTokenCreateResponse)},
		{mock.Post("/item/public_token/exchange"), mock.OK(PlaidPublicTokenExchangeResponse)},
		{mock.Post("/accounts/get"), mock.OK(PlaidAccountsGetResponse)},
		{mock.Post("/transactions/get"), mock.OK(PlaidTransactionsGetResponse)},
		{mock.Post("/institutions/search"), mock.OK(PlaidInstitutionsSearchResponse)},
		{mock.Post("/institutions/get_by_id"), mock.OK(PlaidInstitutionGetByIDResponse)},
		{mock.Post("/identity/get"), mock.OK(PlaidIdentityGetResponse)},
		{mock.Post("/item/get"), mock.OK(PlaidItemGetResponse)},
		{mock.Post("/item/remove"), mock.OK(PlaidItemRemoveResponse)},
	}
}

const PlaidLinkTokenCreateResponse = `{
    "link_token": "link-sandbox-af1a0311-da53-4636-b754-dd15cc058176",
    "expiration": "2024-12-31T23:59:59Z",
    "request_id": "HNTDNrA8F1shFEW"
}`

const PlaidPublicTokenExchangeResponse = `{
    "access_token": "access-sandbox-de3ce8ef-33f8-452c-a685-8671031fc0f6",
    "item_id": "M5eVJqLnv3tbzdngLDp9FL5OlDNxlNhlE55op",
    "request_id": "Aim3b"
}`

const PlaidAccountsGetResponse = `{
    "accounts": [
        {
            "account_id": "BxBXxLj1m4HMXBm9WZZmCWVbPjX16EHwv99vp",
            "balances": {
                "available": 100.00,
                "current": 110.00,
                "iso_currency_code": "USD",
                "limit": null,
                "unofficial_currency_code": null
            },
            "mask": "0000",
            "name": "Plaid Checking",
            "official_name": "Plaid Gold Standard 0% Interest Checking",
            "subtype": "checking",
            "type": "depository"
        },
        {
            "account_id": "dVzbVMLjrxTnLjX4G66XUp5GLklm4oiZy88yK",
            "balances": {
                "available": 200.00,
                "current": 210.00,
                "iso_currency_code": "USD",
                "limit": null,
                "unofficial_currency_code": null
            },
            "mask": "1111",
            "name": "Plaid Saving",
            "official_name": "Plaid Silver Standard 0.1% Interest Saving",
            "subtype": "savings",
            "type": "depository"
        }
    ],
    "item": {
        "available_products": ["balance", "identity"],
        "billed_products": ["transactions"],
        "consent_expiration_time": null,
        "error": null,
        "institution_id": "ins_3",
        "item_id": "M5eVJqLnv3tbzdngLDp9FL5OlDNxlNhlE55op",
        "update_type": "background",
        "webhook": "https://www.example.com"
    },
    "request_id": "bkVE1BHWMAZ9Rnr"
}`

const PlaidTransactionsGetResponse = `{
    "accounts": [],
    "transactions": [
        {
            "account_id": "BxBXxLj1m4HMXBm9WZZmCWVbPjX16EHwv99vp",
            "amount": 25.00,
            "iso_currency_code": "USD",
            "unofficial_currency_code": null,
            "category": ["Food and Drink", "Restaurants"],
            "category_id": "13005000",
            "check_number": null,
            "date": "2024-01-15",
            "datetime": null,
            "location": {
                "address": "123 Main St",
                "city": "San Francisco",
                "region": "CA",
                "postal_code": "94102",
                "country": "US",
                "lat": 37.7749,
                "lon": -122.4194,
                "store_number": null
            },
            "merchant_name": "Starbucks",
            "merchant_entity_id": "starbucks",
            "name": "Starbucks",
            "payment_channel": "in store",
            "pending": false,
            "pending_transaction_id": null,
            "transaction_id": "lPNjeW1nR6CDn5okmGQ6hEpMo4lLNoSrzqDje",
            "transaction_type": "place",
            "counterparties": []
        },
        {
            "account_id": "BxBXxLj1m4HMXBm9WZZmCWVbPjX16EHwv99vp",
            "amount": -500.00,
            "iso_currency_code": "USD",
            "unofficial_currency_code": null,
            "category": ["Transfer", "Deposit"],
            "category_id": "21001000",
            "check_number": null,
            "date": "2024-01-14",
            "datetime": null,
            "location": {},
            "merchant_name": null,
            "merchant_entity_id": null,
            "name": "Direct Deposit - ACME Corp",
            "payment_channel": "other",
            "pending": false,
            "pending_transaction_id": null,
            "transaction_id": "aP4NjeW1nR6CDn5okmGQ6hEpMo4lLNoSrzqXYz",
            "transaction_type": "special",
            "counterparties": []
        }
    ],
    "total_transactions": 2,
    "request_id": "45QSn"
}`

const PlaidInstitutionsSearchResponse = `{
    "institutions": [
        {
            "country_codes": ["US"],
            "institution_id": "ins_3",
            "name": "Chase",
            "oauth": false,
            "products": ["transactions", "auth", "balance", "identity"],
            "routing_numbers": ["021000021", "022000046"],
            "url": "https://www.chase.com",
            "primary_color": "#117ACA",
            "logo": "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="
        },
        {
            "country_codes": ["US"],
            "institution_id": "ins_4",
            "name": "Wells Fargo",
            "oauth": false,
            "products": ["transactions", "auth", "balance"],
            "routing_numbers": ["121000248"],
            "url": "https://www.wellsfargo.com",
            "primary_color": "#D71E28",
            "logo": null
        }
    ],
    "request_id": "m8MDnv9okwxFNBV"
}`

const PlaidInstitutionGetByIDResponse = `{
    "institution": {
        "country_codes": ["US"],
        "institution_id": "ins_3",
        "name": "Chase",
        "oauth": false,
        "products": ["transactions", "auth", "balance", "identity"],
        "routing_numbers": ["021000021", "022000046"],
        "url": "https://www.chase.com",
        "primary_color": "#117ACA",
        "logo": null
    },
    "request_id": "m8MDnv9okwxFNBV"
}`

const PlaidIdentityGetResponse = `{
    "accounts": [
        {
            "account_id": "BxBXxLj1m4HMXBm9WZZmCWVbPjX16EHwv99vp",
            "owners": [
                {
                    "addresses": [
                        {
                            "data": {
                                "city": "San Francisco",
                                "country": "US",
                                "postal_code": "94102",
                                "region": "CA",
                                "street": "123 Main St"
                            },
                            "primary": true
                        }
                    ],
                    "emails": [
                        {
                            "data": "john.doe@example.com",
                            "primary": true,
                            "type": "primary"
                        }
                    ],
                    "names": ["John Doe"],
                    "phone_numbers": [
                        {
                            "data": "+1 415-555-0123",
                            "primary": true,
                            "type": "mobile"
                        }
                    ]
                }
            ]
        }
    ],
    "request_id": "3nARps6TOYtbACO"
}`

const PlaidItemGetResponse = `{
    "item": {
        "available_products": ["balance", "identity"],
        "billed_products": ["transactions"],
        "consent_expiration_time": null,
        "error": null,
        "institution_id": "ins_3",
        "item_id": "M5eVJqLnv3tbzdngLDp9FL5OlDNxlNhlE55op",
        "update_type": "background",
        "webhook": "https://www.example.com"
    },
    "request_id": "m8MDnv9okwxFNBV"
}`

const PlaidItemRemoveResponse = `{
    "request_id": "m8MDnv9okwxFNBV"
}`

const PlaidItemLoginRequiredError = `{
    "error_type": "ITEM_ERROR",
    "error_code": "ITEM_LOGIN_REQUIRED",
    "error_message": "the login details of this item have changed",
    "display_message": "The login details of this item have changed. Please update your credentials."
}`

const PlaidRateLimitError = `{
    "error_type": "RATE_LIMIT_EXCEEDED",
    "error_code": "RATE_LIMIT",
    "error_message": "Rate limit exceeded",
    "display_message": "Too many requests. Please try again later."
}`
