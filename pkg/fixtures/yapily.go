package fixtures

import (
	"context"

	"github.com/getbankmock/bankmock/pkg/engine"
	"github.com/getbankmock/bankmock/pkg/mock"
)

// YapilyHappyPath creates a backend with the Yapily happy-path scenario
// loaded and active.
func YapilyHappyPath(ctx context.Context) (*engine.MockBackend, error) {
	return happyPath(ctx, YapilyScenario, "yapily", yapilyFixtures())
}

// AddYapilyFixtures loads the Yapily happy-path mocks into an existing
// scenario.
func AddYapilyFixtures(ctx context.Context, b *engine.MockBackend, scenarioName string) error {
	return apply(ctx, b, scenarioName, yapilyFixtures())
}

func yapilyFixtures() []fixture {
	return []fixture{
		{mock.Get("/institutions"), mock.OK(YapilyInstitutionsResponse)},
		{mock.Get("/institutions/{id}"), mock.OK(YapilyInstitutionResponse)},
		{mock.Post("/account-auth-requests"), mock.Created(YapilyAuthRequestResponse)},
		{mock.Post("/consents"), mock.Created(YapilyConsentResponse)},
		{mock.Get("/consents/{id}"), mock.OK(YapilyConsentGetResponse)},
		{mock.Delete("/consents/{id}"), mock.NoContent()},
		{mock.Get("/accounts"), mock.OK(YapilyAccountsResponse)},
		{mock.Get("/accounts/{id}"), mock.OK(YapilyAccountResponse)},
		{mock.Get("/accounts/{id}/balances"), mock.OK(YapilyBalancesResponse)},
		{mock.Get("/accounts/{id}/transactions"), mock.OK(YapilyTransactionsResponse)},
		{mock.Get("/identity"), mock.OK(YapilyIdentityResponse)},
		{mock.Post("/payments"), mock.Created(YapilyPaymentResponse)},
		{mock.Get("/payments/{id}"), mock.OK(YapilyPaymentGetResponse)},
	}
}

const YapilyInstitutionsResponse = `{
    "meta": {
        "tracingId": "trace_12345"
    },
    "data": [
        {
            "id": "modelo-sandbox",
            "name": "Modelo Sandbox",
            "fullName": "Modelo Sandbox Bank",
            "countries": [
                {"displayName": "United Kingdom", "countryCode2": "GB"}
            ],
            "environmentType": "SANDBOX",
            "credentialsType": "OPEN_BANKING_UK_AUTO",
            "media": [
                {"source": "https://images.yapily.com/image/modelo-sandbox/icon", "type": "icon"}
            ],
            "features": ["ACCOUNT_STATEMENT", "ACCOUNTS", "IDENTITY", "TRANSACTIONS"]
        },
        {
            "id": "natwest-sandbox",
            "name": "NatWest Sandbox",
            "fullName": "NatWest Sandbox Bank",
            "countries": [
                {"displayName": "United Kingdom", "countryCode2": "GB"}
            ],
            "environmentType": "SANDBOX",
            "credentialsType": "OPEN_BANKING_UK_AUTO",
            "media": [
                {"source": "https://images.yapily.com/image/natwest-sandbox/icon", "type": "icon"}
            ],
            "features": ["ACCOUNTS", "TRANSACTIONS", "PAYMENTS"]
        }
    ]
}`

const YapilyInstitutionResponse = `{
    "meta": {
        "tracingId": "trace_12345"
    },
    "data": {
        "id": "modelo-sandbox",
        "name": "Modelo Sandbox",
        "fullName": "Modelo Sandbox Bank",
        "countries": [
            {"displayName": "United Kingdom", "countryCode2": "GB"}
        ],
        "environmentType": "SANDBOX",
        "credentialsType": "OPEN_BANKING_UK_AUTO",
        "media": [
            {"source": "https://images.yapily.com/image/modelo-sandbox/icon", "type": "icon"}
        ],
        "features": ["ACCOUNT_STATEMENT", "ACCOUNTS", "IDENTITY", "TRANSACTIONS"]
    }
}`

const YapilyAuthRequestResponse = `{
    "meta": {
        "tracingId": "trace_12345"
    },
    "data": {
        "id": "auth_12345",
        "userUuid": "user_12345",
        "applicationUserId": "app_user_123",
        "institutionId": "modelo-sandbox",
        "status": "AWAITING_AUTHORIZATION",
        "createdAt": "2024-01-15T10:00:00Z",
        "featureScope": ["ACCOUNTS", "TRANSACTIONS"],
        "authorisationUrl": "https://ob.modelo.yapily.com/authorize?request=auth_12345",
        "qrCodeUrl": "https://ob.modelo.yapily.com/qr/auth_12345"
    }
}`

const YapilyConsentResponse = `{
    "meta": {
        "tracingId": "trace_12345"
    },
    "data": {
        "id": "consent_12345",
        "userUuid": "user_12345",
        "applicationUserId": "app_user_123",
        "institutionId": "modelo-sandbox",
        "status": "AUTHORIZED",
        "createdAt": "2024-01-15T10:00:00Z",
        "expiresAt": "2024-04-15T10:00:00Z",
        "featureScope": ["ACCOUNTS", "TRANSACTIONS", "IDENTITY"],
        "consentToken": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.consent_token"
    }
}`

const YapilyConsentGetResponse = `{
    "meta": {
        "tracingId": "trace_12345"
    },
    "data": {
        "id": "consent_12345",
        "userUuid": "user_12345",
        "applicationUserId": "app_user_123",
        "institutionId": "modelo-sandbox",
        "status": "AUTHORIZED",
        "createdAt": "2024-01-15T10:00:00Z",
        "expiresAt": "2024-04-15T10:00:00Z",
        "featureScope": ["ACCOUNTS", "TRANSACTIONS", "IDENTITY"],
        "consentToken": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.consent_token"
    }
}`

const YapilyAccountsResponse = `{
    "meta": {
        "tracingId": "trace_12345"
    },
    "data": [
        {
            "id": "acc_12345",
            "type": "PERSONAL",
            "description": "Current Account",
            "balance": 2500.00,
            "currency": "GBP",
            "usageType": "PERSONAL",
            "accountType": "CURRENT",
            "nickname": "My Current Account",
            "accountNames": [
                {"name": "John Smith"}
            ],
            "accountIdentifications": [
                {"type": "SORT_CODE", "identification": "040004"},
                {"type": "ACCOUNT_NUMBER", "identification": "12345678"},
                {"type": "IBAN", "identification": "GB29NWBK60161331926819"}
            ],
            "accountBalances": [
                {
                    "type": "CLOSING_AVAILABLE",
                    "dateTime": "2024-01-15T10:00:00Z",
                    "balanceAmount": {"amount": 2500.00, "currency": "GBP"},
                    "creditLineIncluded": false
                }
            ]
        }
    ]
}`

const YapilyAccountResponse = `{
    "meta": {
        "tracingId": "trace_12345"
    },
    "data": {
        "id": "acc_12345",
        "type": "PERSONAL",
        "description": "Current Account",
        "balance": 2500.00,
        "currency": "GBP",
        "usageType": "PERSONAL",
        "accountType": "CURRENT",
        "nickname": "My Current Account",
        "accountNames": [
            {"name": "John Smith"}
        ],
        "accountIdentifications": [
            {"type": "SORT_CODE", "identification": "040004"},
            {"type": "ACCOUNT_NUMBER", "identification": "12345678"},
            {"type": "IBAN", "identification": "GB29NWBK60161331926819"}
        ]
    }
}`

const YapilyBalancesResponse = `{
    "meta": {
        "tracingId": "trace_12345"
    },
    "data": {
        "accountBalances": [
            {
                "type": "CLOSING_AVAILABLE",
                "dateTime": "2024-01-15T10:00:00Z",
                "balanceAmount": {"amount": 2500.00, "currency": "GBP"},
                "creditLineIncluded": false
            },
            {
                "type": "INTERIM_BOOKED",
                "dateTime": "2024-01-15T10:00:00Z",
                "balanceAmount": {"amount": 2450.00, "currency": "GBP"},
                "creditLineIncluded": false
            }
        ]
    }
}`

const YapilyTransactionsResponse = `{
    "meta": {
        "tracingId": "trace_12345"
    },
    "data": [
        {
            "id": "txn_001",
            "date": "2024-01-15",
            "bookingDateTime": "2024-01-15T14:30:00Z",
            "valueDateTime": "2024-01-15T14:30:00Z",
            "status": "BOOKED",
            "amount": -75.50,
            "currency": "GBP",
            "transactionAmount": {"amount": -75.50, "currency": "GBP"},
            "reference": "Payment to Sainsbury's",
            "description": "Sainsbury's Supermarkets",
            "transactionInformation": ["Sainsbury's Supermarkets Ltd"],
            "proprietaryBankTransactionCode": {"code": "CARD", "issuer": "MODELO"}
        },
        {
            "id": "txn_002",
            "date": "2024-01-14",
            "bookingDateTime": "2024-01-14T09:00:00Z",
            "valueDateTime": "2024-01-14T09:00:00Z",
            "status": "BOOKED",
            "amount": 3500.00,
            "currency": "GBP",
            "transactionAmount": {"amount": 3500.00, "currency": "GBP"},
            "reference": "Salary",
            "description": "ACME Ltd Salary",
            "transactionInformation": ["ACME Ltd Monthly Salary"],
            "proprietaryBankTransactionCode": {"code": "TRANSFER", "issuer": "MODELO"}
        }
    ]
}`

const YapilyIdentityResponse = `{
    "meta": {
        "tracingId": "trace_12345"
    },
    "data": {
        "id": "identity_12345",
        "fullName": "John Smith",
        "firstName": "John",
        "lastName": "Smith",
        "dateOfBirth": "1990-05-15",
        "addresses": [
            {
                "addressLines": ["123 High Street"],
                "city": "London",
                "postCode": "SW1A 1AA",
                "country": "GB",
                "addressType": "HOME"
            }
        ],
        "emails": ["john.smith@example.com"],
        "phones": ["+44 7700 900123"]
    }
}`

const YapilyPaymentResponse = `{
    "meta": {
        "tracingId": "trace_12345"
    },
    "data": {
        "id": "payment_12345",
        "institutionId": "modelo-sandbox",
        "paymentIdempotencyId": "idempotency_12345",
        "paymentLifecycleId": "lifecycle_12345",
        "status": "PENDING",
        "statusDetails": {
            "status": "PENDING",
            "statusReason": "AWAITING_AUTHORIZATION"
        },
        "amount": {"amount": 100.00, "currency": "GBP"},
        "reference": "Test Payment",
        "createdAt": "2024-01-15T10:00:00Z"
    }
}`

const YapilyPaymentGetResponse = `{
    "meta": {
        "tracingId": "trace_12345"
    },
    "data": {
        "id": "payment_12345",
        "institutionId": "modelo-sandbox",
        "paymentIdempotencyId": "idempotency_12345",
        "paymentLifecycleId": "lifecycle_12345",
        "status": "COMPLETED",
        "statusDetails": {
            "status": "COMPLETED",
            "statusReason": "PAYMENT_ACCEPTED"
        },
        "amount": {"amount": 100.00, "currency": "GBP"},
        "reference": "Test Payment",
        "createdAt": "2024-01-15T10:00:00Z",
        "updatedAt": "2024-01-15T10:05:00Z"
    }
}`
