// Пакет mocks — сгенерированные gomock-моки внутренних контрактов консьюмера.
package mocks

//go:generate mockgen -source=../consumer.go -destination=mock_consumer_deps.go -package=mocks
