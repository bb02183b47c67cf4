//go:generate mockgen -source=../cart_store.go          -destination=./mock_cart_store.go          -package=mocks
//go:generate mockgen -source=../cart_persistence.go    -destination=./mock_cart_persistence.go    -package=mocks
//go:generate mockgen -source=../remote_cart_gateway.go -destination=./mock_remote_cart_gateway.go -package=mocks
//go:generate mockgen -source=../notifier.go            -destination=./mock_notifier.go            -package=mocks
//go:generate mockgen -source=../cart_sync_service.go   -destination=./mock_cart_sync_service.go   -package=mocks
//go:generate mockgen -source=../validator.go           -destination=./mock_validator.go           -package=mocks
//go:generate mockgen -source=../message_consumer.go    -destination=./mock_message_consumer.go    -package=mocks

package mocks
