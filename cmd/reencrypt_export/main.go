// Re-encrypts an existing wallet export under fresh salt/IV and the
// current KDF policy. Useful after changing KDF settings or passwords.
// Usage: go run ./cmd/reencrypt_export <export-file.wvx>
package main

import (
	"fmt"
	"os"

	"wvt/hdwallet"
	"wvt/internal/config"
	"wvt/internal/crypto"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: reencrypt_export <export-file.wvx>")
		os.Exit(1)
	}
	filePath := os.Args[1]

	if err := config.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	export, err := hdwallet.LoadExport(filePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load export:", err)
		os.Exit(1)
	}

	oldPassword, err := config.PromptPassword("Enter current password: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer clear(oldPassword)

	record, err := crypto.DecryptWallet(export, oldPassword)
	if err != nil {
		fmt.Fprintln(os.Stderr, "decrypt failed:", err)
		os.Exit(1)
	}

	newPassword, err := config.PromptPassword("Enter new password: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer clear(newPassword)

	confirm, err := config.PromptPassword("Confirm new password: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer clear(confirm)
	if string(newPassword) != string(confirm) {
		fmt.Fprintln(os.Stderr, "passwords do not match")
		os.Exit(1)
	}

	// Fresh salt and IV, current ladder/calibration policy.
	newExport, err := crypto.EncryptWallet(record, newPassword, config.DeriveOptions())
	if err != nil {
		fmt.Fprintln(os.Stderr, "encrypt failed:", err)
		os.Exit(1)
	}

	if err := os.WriteFile(filePath, []byte(newExport), 0600); err != nil {
		fmt.Fprintln(os.Stderr, "failed to write file:", err)
		os.Exit(1)
	}

	fmt.Fprintln(os.Stderr, "export re-encrypted")
}
