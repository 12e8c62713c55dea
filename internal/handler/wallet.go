package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"wvt/hdwallet"
	"wvt/internal/config"
	"wvt/internal/crypto"
	"wvt/internal/model"
)

// WalletHandler holds configuration for wallet operations
type WalletHandler struct {
	filePath    string
	network     string
	addressKind string
}

// NewWalletHandler creates a new WalletHandler with config values
func NewWalletHandler() *WalletHandler {
	return &WalletHandler{
		filePath:    config.GetWalletFilePath(),
		network:     config.GetNetwork(),
		addressKind: config.GetAddressKind(),
	}
}

func (h *WalletHandler) resolveDerivation(network, kindStr string) (hdwallet.AddressKind, uint32, error) {
	if network == "" {
		network = h.network
	}
	if kindStr == "" {
		kindStr = h.addressKind
	}

	kind, err := hdwallet.KindFromString(kindStr)
	if err != nil {
		return "", 0, err
	}
	coinType, err := hdwallet.CoinTypeFromNetwork(network)
	if err != nil {
		return "", 0, err
	}
	return kind, coinType, nil
}

// Generate handles POST /wallet/generate
// @Summary      Generate new wallet
// @Description  Generates entropy, validates it, derives an HD wallet, and returns the encrypted export
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request body model.GenerateRequest true "generation options"
// @Success      200  {object}  model.GenerateResponse
// @Failure      400  {object}  model.ErrorResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /wallet/generate [post]
func (h *WalletHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "password is required")
		return
	}

	kind, coinType, err := h.resolveDerivation(req.Network, req.AddressKind)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	passwordBytes := []byte(req.Password)
	defer clear(passwordBytes) // Always clear password from memory

	result, err := hdwallet.GenerateWallet(passwordBytes, hdwallet.GenerateOptions{
		EntropyBits: req.EntropyBits,
		Passphrase:  req.Passphrase,
		Kind:        kind,
		CoinType:    coinType,
		Derive:      config.DeriveOptions(),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "generate_failed", err.Error())
		return
	}

	if req.SaveToFile {
		if h.filePath == "" {
			writeError(w, http.StatusBadRequest, "bad_request", "WALLET_FILE_PATH not set")
			return
		}
		if err := hdwallet.SaveExport(h.filePath, result.Export); err != nil {
			if hdwallet.IsFileExistsError(err) {
				writeError(w, http.StatusConflict, "file_exists", err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "save_failed", err.Error())
			return
		}
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success:     true,
		Message:     "Wallet generated successfully",
		Address:     result.Record.Address,
		Path:        result.Record.Path,
		AccountXpub: result.Record.AccountXpub,
		Export:      result.Export,
		QR:          result.QR,
	})
}

// Restore handles POST /wallet/restore
// @Summary      Restore wallet from mnemonic
// @Description  Rebuilds wallet key material from an existing BIP-39 mnemonic
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request body model.RestoreRequest true "mnemonic and derivation options"
// @Success      200  {object}  model.WalletRecord
// @Failure      400  {object}  model.ErrorResponse
// @Router       /wallet/restore [post]
func (h *WalletHandler) Restore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.RestoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if req.Mnemonic == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "mnemonic is required")
		return
	}

	kind, coinType, err := h.resolveDerivation(req.Network, req.AddressKind)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	record, err := hdwallet.RestoreWallet(req.Mnemonic, req.Passphrase, kind, coinType, hdwallet.DerivationIndexes{
		Account: req.Account,
		Change:  req.Change,
		Index:   req.Index,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, "restore_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// Export handles POST /wallet/export
// @Summary      Encrypt a wallet record
// @Description  Encrypts a wallet record into a transportable export blob
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request body model.ExportRequest true "record and password"
// @Success      200  {object}  model.ExportResponse
// @Failure      400  {object}  model.ErrorResponse
// @Router       /wallet/export [post]
func (h *WalletHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if req.Record == nil || req.Password == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "record and password are required")
		return
	}

	passwordBytes := []byte(req.Password)
	defer clear(passwordBytes)

	export, err := crypto.EncryptWallet(req.Record, passwordBytes, config.DeriveOptions())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "export_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, model.ExportResponse{Export: export})
}

// Import handles POST /wallet/import
// @Summary      Decrypt a wallet export
// @Description  Decrypts an export blob back into a wallet record
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request body model.ImportRequest true "export blob and password"
// @Success      200  {object}  model.WalletRecord
// @Failure      400  {object}  model.ErrorResponse
// @Failure      401  {object}  model.ErrorResponse
// @Router       /wallet/import [post]
func (h *WalletHandler) Import(w http.ResponseWriter, r *http.Request) {
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

	record, err := crypto.DecryptWallet(req.Export, passwordBytes)
	if err != nil {
		switch {
		case errors.Is(err, crypto.ErrMalformedExport):
			writeError(w, http.StatusBadRequest, "malformed_export", err.Error())
		case errors.Is(err, crypto.ErrDecryptionFailed):
			writeError(w, http.StatusUnauthorized, "decryption_failed", err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "import_failed", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// Inspect handles POST /wallet/inspect
// @Summary      Inspect an export header
// @Description  Parses the export envelope header without requiring the password
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request body model.ImportRequest true "export blob"
// @Success      200  {object}  model.InspectResponse
// @Failure      400  {object}  model.ErrorResponse
// @Router       /wallet/inspect [post]
func (h *WalletHandler) Inspect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if req.Export == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "export is required")
		return
	}

	header, _, ciphertext, err := crypto.DeserializeExport(req.Export)
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed_export", err.Error())
		return
	}

	resp := model.InspectResponse{
		Version:       header.Version,
		Kdf:           string(header.Kdf.Kind),
		Cipher:        "aes-256-gcm",
		CiphertextLen: len(ciphertext),
	}
	switch header.Kdf.Kind {
	case crypto.KdfArgon2id:
		resp.MemoryMiB = header.Kdf.Argon2id.MemoryMiB
		resp.TimeCost = header.Kdf.Argon2id.TimeCost
		resp.Parallelism = header.Kdf.Argon2id.Parallelism
	case crypto.KdfPbkdf2:
		resp.Iterations = header.Kdf.Pbkdf2.Iterations
	}

	writeJSON(w, http.StatusOK, resp)
}
