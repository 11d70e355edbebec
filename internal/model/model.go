// Package model contains data structures for the resolved run configuration and the search service DTOs
package model

// EnvCaseInsensitive - присутствие переменной отключает регистрозависимый поиск, значение не важно
const EnvCaseInsensitive = "CASE_INSENSITIVE"

// Config - параметры одного запуска, собираются один раз при старте и дальше не меняются
type Config struct {
	Query         string
	FileName      string
	CaseSensitive bool
}

// SearchRequest - тело POST /search
type SearchRequest struct {
	Query           string `json:"query" binding:"required"`
	Contents        string `json:"contents"`
	CaseInsensitive bool   `json:"case_insensitive"`
}

// SearchResult - ответ сервиса; HashSumm позволяет сравнивать результаты разных нод без сравнения строк
type SearchResult struct {
	RequestID string   `json:"request_id"`
	Lines     []string `json:"lines"`
	Count     int      `json:"count"`
	HashSumm  uint64   `json:"hash"`
}
