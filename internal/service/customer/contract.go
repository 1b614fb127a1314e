//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customer_test
package customer

import "context"

type Repository interface {
	UpsertToken(ctx context.Context, customerID int64, token string) error
}
