package fixtures

import (
	"context"

	"github.com/getbankmock/bankmock/pkg/engine"
	"github.com/getbankmock/bankmock/pkg/mock"
)

// GoCardlessHappyPath creates a backend with the GoCardless happy-path
// scenario loaded and active.
func GoCardlessHappyPath(ctx context.Context) (*engine.MockBackend, error) {
	return happyPath(ctx, GoCardlessScenario, "gocardless", goCardlessFixtures())
}

// AddGoCardlessFixtures loads the GoCardless happy-path mocks into an
// existing scenario.
func AddGoCardlessFixtures(ctx context.Context, b *engine.MockBackend, scenarioName string) error {
	return apply(ctx, b, scenarioName, goCardlessFixtures())
}

func goCardlessFixtures() []fixture {
	return []fixture{
		{mock.Post("/api/v2/token/new/"), mock.OK(GoCardlessTokenResponse)},
		{mock.Post("/api/v2/requisitions/"), mock.Created(GoCardlessRequisitionResponse)},
		{mock.Get("/api/v2/requisitions/{id}/"), mock.OK(GoCardlessRequisitionGetResponse)},
		{mock.Get("/api/v2/accounts/{id}/"), mock.OK(GoCardlessAccountResponse)},
		{mock.Get("/api/v2/accounts/{id}/details/"), mock.OK(GoCardlessAccountDetailsResponse)},
		{mock.Get("/api/v2/accounts/{id}/balances/"), mock.OK(GoCardlessBalancesResponse)},
		{mock.Get("/api/v2/accounts/{id}/transactions/"), mock.OK(GoCardlessTransactionsResponse)},
		{mock.Get("/api/v2/institutions/"), mock.OK(GoCardlessInstitutionsResponse)},
		{mock.Get("/api/v2/institutions/{id}/"), mock.OK(GoCardlessInstitutionResponse)},
		{mock.Delete("/api/v2/requisitions/{id}/"), mock.NoContent()},
	}
}

const GoCardlessTokenResponse = `{
    "access": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.test_access",
    "access_expires": 86400,
    "refresh": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.test_refresh",
    "refresh_expires": 2592000
}`

const GoCardlessRequisitionResponse = `{
    "id": "req_12345",
    "created": "2024-01-15T10:00:00Z",
    "redirect": "https://example.com/callback",
    "status": "LN",
    "institution_id": "SANDBOXFINANCE_SFIN0000",
    "agreement": null,
    "reference": "user_123",
    "accounts": [],
    "link": "https://ob.gocardless.com/psd2/start/req_12345"
}`

const GoCardlessRequisitionGetResponse = `{
    "id": "req_12345",
    "created": "2024-01-15T10:00:00Z",
    "redirect": "https://example.com/callback",
    "status": "LN",
    "institution_id": "SANDBOXFINANCE_SFIN0000",
    "agreement": null,
    "reference": "user_123",
    "accounts": ["acc_12345", "acc_67890"],
    "link": "https://ob.gocardless.com/psd2/start/req_12345"
}`

const GoCardlessAccountResponse = `{
    "id": "acc_12345",
    "created": "2024-01-15T10:30:00Z",
    "last_accessed": "2024-01-15T12:00:00Z",
    "iban": "DE89370400440532013000",
    "institution_id": "SANDBOXFINANCE_SFIN0000",
    "status": "READY",
    "owner_name": "Max Mustermann"
}`

const GoCardlessAccountDetailsResponse = `{
    "account": {
        "resource_id": "res_12345",
        "iban": "DE89370400440532013000",
        "bban": "370400440532013000",
        "currency": "EUR",
        "owner_name": "Max Mustermann",
        "name": "Main Account",
        "product": "Current Account",
        "cash_account_type": "CACC"
    }
}`

const GoCardlessBalancesResponse = `{
    "balances": [
        {
            "balance_amount": {
                "amount": "2500.00",
                "currency": "EUR"
            },
            "balance_type": "closingBooked",
            "reference_date": "2024-01-15"
        },
        {
            "balance_amount": {
                "amount": "2450.00",
                "currency": "EUR"
            },
            "balance_type": "interimAvailable",
            "reference_date": "2024-01-15"
        }
    ]
}`

const GoCardlessTransactionsResponse = `{
    "transactions": {
        "booked": [
            {
                "transaction_id": "txn_001",
                "booking_date": "2024-01-15",
                "value_date": "2024-01-15",
                "transaction_amount": {
                    "amount": "-50.00",
                    "currency": "EUR"
                },
                "remittance_information_unstructured": "Amazon.de",
                "creditor_name": "Amazon EU S.a.r.l.",
                "bank_transaction_code": "PMNT-ICDT-STDO"
            },
            {
                "transaction_id": "txn_002",
                "booking_date": "2024-01-14",
                "value_date": "2024-01-14",
                "transaction_amount": {
                    "amount": "3000.00",
                    "currency": "EUR"
                },
                "remittance_information_unstructured": "Salary January",
                "debtor_name": "ACME GmbH",
                "bank_transaction_code": "PMNT-RCDT-SALA"
            }
        ],
        "pending": [
            {
                "transaction_amount": {
                    "amount": "-25.00",
                    "currency": "EUR"
                },
                "remittance_information_unstructured": "Pending payment"
            }
        ]
    }
}`

const GoCardlessInstitutionsResponse = `[
    {
        "id": "SANDBOXFINANCE_SFIN0000",
        "name": "Sandbox Finance",
        "bic": "SFIN0000",
        "transaction_total_days": "90",
        "countries": ["DE", "AT"],
        "logo": "https://cdn.gocardless.com/logos/sandbox.png"
    },
    {
        "id": "DEUTSCHE_BANK_DEUTDEFF",
        "name": "Deutsche Bank",
        "bic": "DEUTDEFF",
        "transaction_total_days": "90",
        "countries": ["DE"],
        "logo": "https://cdn.gocardless.com/logos/deutsche_bank.png"
    }
]`

const GoCardlessInstitutionResponse = `{
    "id": "SANDBOXFINANCE_SFIN0000",
    "name": "Sandbox Finance",
    "bic": "SFIN0000",
    "transaction_total_days": "90",
    "countries": ["DE", "AT"],
    "logo": "https://cdn.gocardless.com/logos/sandbox.png"
}`
