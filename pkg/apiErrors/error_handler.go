package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidWindow       = "VAL_004" // Janela de datas inválida
	ErrUnknownMetric       = "VAL_005" // Métrica desconhecida
	ErrUnknownChannel      = "VAL_006" // Canal desconhecido

	// Erros de recurso (4000-4999)
	ErrNotFound      = "RES_001" // Nenhum dado para a janela
	ErrUnknownFamily = "RES_002" // Família de métricas não cadastrada
	ErrSyncRunning   = "RES_003" // Sincronização já em andamento

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrInconsistentData  = "SRV_003" // Fontes com chaves divergentes
	ErrTimeout           = "SRV_004" // Consulta excedeu o tempo limite
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidWindow:       http.StatusBadRequest,
	ErrUnknownMetric:       http.StatusBadRequest,
	ErrUnknownChannel:      http.StatusBadRequest,
	ErrNotFound:            http.StatusNotFound,
	ErrUnknownFamily:       http.StatusNotFound,
	ErrSyncRunning:         http.StatusConflict,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrInconsistentData:    http.StatusInternalServerError,
	ErrTimeout:             http.StatusGatewayTimeout,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusOf retorna o status HTTP de um código; códigos desconhecidos viram 500
func StatusOf(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusOf(code))
	json.NewEncoder(w).Encode(apiErr)
}
