package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"wvt/internal/config"
	"wvt/internal/crypto"
	"wvt/internal/model"
)

// SecretHandler applies the wallet export envelope to arbitrary text
// secrets.
type SecretHandler struct{}

// NewSecretHandler creates a new SecretHandler
func NewSecretHandler() *SecretHandler {
	return &SecretHandler{}
}

// Encrypt handles POST /secret/encrypt
// @Summary      Encrypt a text secret
// @Description  Encrypts an arbitrary string secret with the same envelope used for wallet exports
// @Tags         secret
// @Accept       json
// @Produce      json
// @Param        request body model.SecretRequest true "secret and password"
// @Success      200  {object}  model.ExportResponse
// @Failure      400  {object}  model.ErrorResponse
// @Router       /secret/encrypt [post]
func (h *SecretHandler) Encrypt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.SecretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if req.Secret == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "secret and password are required")
		return
	}

	passwordBytes := []byte(req.Password)
	defer clear(passwordBytes)

	export, err := crypto.EncryptText(req.Secret, passwordBytes, config.DeriveOptions())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encrypt_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, model.ExportResponse{Export: export})
}

// Decrypt handles POST /secret/decrypt
// @Summary      Decrypt a text secret
// @Description  Decrypts a secret export blob back into the original string
// @Tags         secret
// @Accept       json
// @Produce      json
// @Param        request body model.ImportRequest true "export blob and password"
// @Success      200  {object}  model.SecretResponse
// @Failure      400  {object}  model.ErrorResponse
// @Failure      401  {object}  model.ErrorResponse
// @Router       /secret/decrypt [post]
func (h *SecretHandler) Decrypt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if req.Export == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "export and password are required")
		return
	}

	passwordBytes := []byte(req.Password)
	defer clear(passwordBytes)

	secret, err := crypto.DecryptText(req.Export, passwordBytes)
	if err != nil {
		switch {
		case errors.Is(err, crypto.ErrMalformedExport):
			writeError(w, http.StatusBadRequest, "malformed_export", err.Error())
		case errors.Is(err, crypto.ErrDecryptionFailed):
			writeError(w, http.StatusUnauthorized, "decryption_failed", err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "decrypt_failed", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, model.SecretResponse{Secret: secret})
}
