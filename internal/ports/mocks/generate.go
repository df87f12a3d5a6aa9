//go:generate mockgen -source=../item_repository.go -destination=./mock_item_repository.go -package=mocks
//go:generate mockgen -source=../search_client.go   -destination=./mock_search_client.go   -package=mocks
//go:generate mockgen -source=../search_service.go  -destination=./mock_search_service.go  -package=mocks
//go:generate mockgen -source=../notifier.go        -destination=./mock_notifier.go        -package=mocks
//go:generate mockgen -source=../validator.go       -destination=./mock_validator.go       -package=mocks

package mocks
