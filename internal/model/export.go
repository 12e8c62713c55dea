package model

// ExportRequest represents request for POST /wallet/export
type ExportRequest struct {
	Record   *WalletRecord `json:"record" binding:"required"`
	Password string        `json:"password" binding:"required"`
}

// ExportResponse represents response for POST /wallet/export and /secret/encrypt
type ExportResponse struct {
	Export string `json:"export"`
}

// ImportRequest represents request for POST /wallet/import and /wallet/inspect
type ImportRequest struct {
	Export   string `json:"export" binding:"required"`
	Password string `json:"password,omitempty"` // not needed for inspect
}

// InspectResponse describes an export header without touching the password.
type InspectResponse struct {
	Version       int    `json:"version"`
	Kdf           string `json:"kdf"`
	MemoryMiB     uint32 `json:"memoryMiB,omitempty"`
	TimeCost      uint32 `json:"timeCost,omitempty"`
	Parallelism   uint8  `json:"parallelism,omitempty"`
	Iterations    int    `json:"iterations,omitempty"`
	Cipher        string `json:"cipher"`
	CiphertextLen int    `json:"ciphertextLen"`
}

// SecretRequest represents request for POST /secret/encrypt
type SecretRequest struct {
	Secret   string `json:"secret" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SecretResponse represents response for POST /secret/decrypt
type SecretResponse struct {
	Secret string `json:"secret"`
}
