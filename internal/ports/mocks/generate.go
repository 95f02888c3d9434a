//go:generate mockgen -source=../order_repository.go -destination=./mock_order_repository.go -package=mocks
//go:generate mockgen -source=../order_transport.go  -destination=./mock_order_transport.go  -package=mocks
//go:generate mockgen -source=../order_service.go    -destination=./mock_order_service.go    -package=mocks
//go:generate mockgen -source=../agent_forwarder.go  -destination=./mock_agent_forwarder.go  -package=mocks
//go:generate mockgen -source=../validator.go        -destination=./mock_validator.go        -package=mocks
//go:generate mockgen -source=../event_publisher.go  -destination=./mock_event_publisher.go  -package=mocks
//go:generate mockgen -source=../logger.go           -destination=./mock_logger.go           -package=mocks

package mocks
