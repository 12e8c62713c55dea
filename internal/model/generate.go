package model

// GenerateRequest represents request for POST /wallet/generate
type GenerateRequest struct {
	Password    string `json:"password" binding:"required"`
	EntropyBits int    `json:"entropyBits,omitempty"` // 128..256, default 256
	Network     string `json:"network,omitempty"`
	AddressKind string `json:"addressKind,omitempty"`
	Passphrase  string `json:"passphrase,omitempty"` // optional BIP-39 passphrase
	SaveToFile  bool   `json:"saveToFile,omitempty"` // persist export to the configured wallet file
}

// GenerateResponse represents response for POST /wallet/generate
type GenerateResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Address     string `json:"address,omitempty"`
	Path        string `json:"path,omitempty"`
	AccountXpub string `json:"accountXpub,omitempty"`
	Export      string `json:"export,omitempty"`
	QR          string `json:"QR,omitempty"` // base64 PNG of the address
}

// RestoreRequest represents request for POST /wallet/restore
type RestoreRequest struct {
	Mnemonic    string `json:"mnemonic" binding:"required"`
	Passphrase  string `json:"passphrase,omitempty"`
	Network     string `json:"network,omitempty"`
	AddressKind string `json:"addressKind,omitempty"`
	Account     uint32 `json:"account,omitempty"`
	Change      uint32 `json:"change,omitempty"`
	Index       uint32 `json:"index,omitempty"`
}
