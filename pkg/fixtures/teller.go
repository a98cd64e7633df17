package fixtures

import (
	"context"

	"github.com/getbankmock/bankmock/pkg/engine"
	"github.com/getbankmock/bankmock/pkg/mock"
)

// TellerHappyPath creates a backend with the Teller happy-path scenario
// loaded and active.
func TellerHappyPath(ctx context.Context) (*engine.MockBackend, error) {
	return happyPath(ctx, TellerScenario, "teller", tellerFixtures())
}

// AddTellerFixtures loads the Teller happy-path mocks into an existing
// scenario.
func AddTellerFixtures(ctx context.Context, b *engine.MockBackend, scenarioName string) error {
	return apply(ctx, b, scenarioName, tellerFixtures())
}

func tellerFixtures() []fixture {
	return []fixture{
		{mock.Get("/accounts"), mock.OK(TellerAccountsResponse)},
		{mock.Get("/accounts/{id}"), mock.OK(TellerAccountResponse)},
		{mock.Get("/accounts/{id}/balances"), mock.OK(TellerBalancesResponse)},
		{mock.Get("/accounts/{id}/details"), mock.OK(TellerDetailsResponse)},
		{mock.Get("/accounts/{id}/transactions"), mock.OK(TellerTransactionsResponse)},
		{mock.Get("/accounts/{id}/transactions/{transaction_id}"), mock.OK(TellerTransactionResponse)},
		{mock.Get("/accounts/{id}/identity"), mock.OK(TellerIdentityResponse)},
		{mock.Delete("/accounts/{id}"), mock.NoContent()},
	}
}

const TellerAccountsResponse = `[
    {
        "id": "acc_12345",
        "name": "My Checking",
        "type": "depository",
        "subtype": "checking",
        "currency": "USD",
        "enrollment_id": "enr_12345",
        "institution": {
            "id": "chase",
            "name": "Chase"
        },
        "last_four": "1234",
        "status": "open",
        "links": {
            "balances": "https://api.teller.io/accounts/acc_12345/balances",
            "transactions": "https://api.teller.io/accounts/acc_12345/transactions",
            "details": "https://api.teller.io/accounts/acc_12345/details",
            "self": "https://api.teller.io/accounts/acc_12345"
        }
    }
]`

const TellerAccountResponse = `{
    "id": "acc_12345",
    "name": "My Checking",
    "type": "depository",
    "subtype": "checking",
    "currency": "USD",
    "enrollment_id": "enr_12345",
    "institution": {
        "id": "chase",
        "name": "Chase"
    },
    "last_four": "1234",
    "status": "open",
    "links": {
        "balances": "https://api.teller.io/accounts/acc_12345/balances",
        "transactions": "https://api.teller.io/accounts/acc_12345/transactions",
        "details": "https://api.teller.io/accounts/acc_12345/details",
        "self": "https://api.teller.io/accounts/acc_12345"
    }
}`

const TellerBalancesResponse = `{
    "account_id": "acc_12345",
    "available": "1500.00",
    "ledger": "1600.00",
    "links": {
        "account": "https://api.teller.io/accounts/acc_12345",
        "self": "https://api.teller.io/accounts/acc_12345/balances"
    }
}`

const TellerDetailsResponse = `{
    "account_id": "acc_12345",
    "account_number": "123456789",
    "routing_numbers": {
        "ach": "021000021",
        "wire": "021000021"
    },
    "links": {
        "account": "https://api.teller.io/accounts/acc_12345",
        "self": "https://api.teller.io/accounts/acc_12345/details"
    }
}`

const TellerTransactionsResponse = `[
    {
        "id": "txn_001",
        "account_id": "acc_12345",
        "date": "2024-01-15",
        "description": "Starbucks",
        "details": {
            "processing_status": "complete",
            "category": "food",
            "counterparty": {
                "name": "Starbucks",
                "type": "merchant"
            }
        },
        "status": "posted",
        "amount": "-5.75",
        "running_balance": "1594.25",
        "type": "card_payment",
        "links": {
            "account": "https://api.teller.io/accounts/acc_12345",
            "self": "https://api.teller.io/accounts/acc_12345/transactions/txn_001"
        }
    },
    {
        "id": "txn_002",
        "account_id": "acc_12345",
        "date": "2024-01-14",
        "description": "Direct Deposit",
        "details": {
            "processing_status": "complete",
            "category": "income",
            "counterparty": {
                "name": "ACME Corp",
                "type": "organization"
            }
        },
        "status": "posted",
        "amount": "3000.00",
        "running_balance": "1600.00",
        "type": "ach",
        "links": {
            "account": "https://api.teller.io/accounts/acc_12345",
            "self": "https://api.teller.io/accounts/acc_12345/transactions/txn_002"
        }
    }
]`

const TellerTransactionResponse = `{
    "id": "txn_001",
    "account_id": "acc_12345",
    "date": "2024-01-15",
    "description": "Starbucks",
    "details": {
        "processing_status": "complete",
        "category": "food",
        "counterparty": {
            "name": "Starbucks",
            "type": "merchant"
        }
    },
    "status": "posted",
    "amount": "-5.75",
    "running_balance": "1594.25",
    "type": "card_payment",
    "links": {
        "account": "https://api.teller.io/accounts/acc_12345",
        "self": "https://api.teller.io/accounts/acc_12345/transactions/txn_001"
    }
}`

const TellerIdentityResponse = `{
    "emails": [
        {"data": "john.doe@example.com", "type": "primary"}
    ],
    "names": [
        {"data": "John Doe"}
    ],
    "phone_numbers": [
        {"data": "+14155550123", "type": "mobile"}
    ],
    "addresses": [
        {
            "data": {
                "street": "123 Main St",
                "city": "San Francisco",
                "state": "CA",
                "postal_code": "94102",
                "country": "US"
            },
            "type": "primary"
        }
    ]
}`
