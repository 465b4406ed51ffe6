// Package docs Tile Explorer API.
//
// Сервис считает покрытие тайлами zoom 14 по сохранённым велопоездкам:
// посещённые тайлы, максимальный полностью посещённый квадрат и кластер
// тайлов, окружённых посещёнными со всех четырёх сторон.
//
// Основные возможности:
// - Покрытие тайлами в JSON и GeoJSON
// - Хранение поездок и синхронизация со Strava
// - Статистика по поездкам
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//	- application/geo+json
//
// swagger:meta
package docs
