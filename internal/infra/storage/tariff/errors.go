package tariff

import "errors"

var (
	// ErrTariffNotFound возвращается, когда у зоны нет ни одного тарифного правила
	ErrTariffNotFound = errors.New("tariff.repository: no tariff rules for zone")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tariff.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tariff.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tariff.repository: failed to scan row")
)
