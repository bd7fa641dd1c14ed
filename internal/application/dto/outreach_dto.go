package dto

// GenerateDocumentsResponse rutas de los archivos generados.
type GenerateDocumentsResponse struct {
	Offer     string `json:"offer"`
	Checklist string `json:"checklist"`
}

// MessageResponse respuesta simple con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// ReminderResponse resultado del envío de recordatorio.
type ReminderResponse struct {
	Message string   `json:"message"`
	Pending []string `json:"pending"`
	Sent    bool     `json:"sent"`
}
