package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hay-kot/claudemd/internal/core"
	"github.com/hay-kot/claudemd/pkgs/fcrypt"
	"github.com/hay-kot/claudemd/pkgs/printer"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

type EncryptCmd struct {
	coreFlags *core.Flags
}

func NewEncryptCmd(coreFlags *core.Flags) *EncryptCmd {
	return &EncryptCmd{coreFlags: coreFlags}
}

func (ec *EncryptCmd) Register(app *cli.Command) *cli.Command {
	cmds := []*cli.Command{
		{
			Name:  "encrypt",
			Usage: "encrypt the project config in-place",
			Description: `Replaces the project configuration document with <name>.age, encrypted to
the first recipient under age.recipients in the settings file. generate and
sections read the encrypted file transparently when age.identity_file (or
--identity) is set.

The plaintext file is removed after encryption.`,
			Action: ec.encrypt,
		},
		{
			Name:  "decrypt",
			Usage: "decrypt the project config in-place",
			Description: `Restores the plaintext project configuration document from <name>.age
using the configured age identity, then removes the encrypted file.`,
			Action: ec.decrypt,
		},
	}

	app.Commands = append(app.Commands, cmds...)
	return app
}

func (ec *EncryptCmd) encrypt(ctx context.Context, cmd *cli.Command) error {
	env, err := core.SetupEnv(ec.coreFlags)
	if err != nil {
		return err
	}

	source := env.ConfigPath
	if fcrypt.IsEncrypted(source) {
		return fmt.Errorf("config %s is already encrypted", source)
	}

	if _, err := os.Stat(source + fcrypt.Ext); err == nil {
		return fmt.Errorf("encrypted config %s already exists", source+fcrypt.Ext)
	}

	recipient, err := env.Settings.Age.ReadRecipient()
	if err != nil {
		return fmt.Errorf("failed to load public key: %w", err)
	}

	log.Info().Str("source", source).Msg("encrypting config")

	target, err := fcrypt.EncryptInPlace(source, recipient)
	if err != nil {
		return fmt.Errorf("failed to encrypt %s: %w", source, err)
	}

	printer.Ctx(ctx).Success(fmt.Sprintf("Encrypted %s", shortenPath(target)))
	return nil
}

func (ec *EncryptCmd) decrypt(ctx context.Context, cmd *cli.Command) error {
	env, err := core.SetupEnv(ec.coreFlags)
	if err != nil {
		return err
	}

	source := env.ConfigPath
	if !fcrypt.IsEncrypted(source) {
		source += fcrypt.Ext
	}

	if _, err := os.Stat(source); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("no encrypted config at %s", source)
	}

	identity, err := env.Settings.Age.ReadIdentity()
	if err != nil {
		return err
	}

	log.Info().Str("source", source).Msg("decrypting config")

	target, err := fcrypt.DecryptInPlace(source, identity)
	if err != nil {
		return fmt.Errorf("failed to decrypt %s: %w", source, err)
	}

	printer.Ctx(ctx).Success(fmt.Sprintf("Decrypted %s", shortenPath(target)))
	return nil
}
