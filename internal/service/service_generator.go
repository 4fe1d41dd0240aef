// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-master-password/internal/config"
	"github.com/MKhiriev/go-master-password/internal/crypto"
	"github.com/MKhiriev/go-master-password/internal/logger"
	"github.com/MKhiriev/go-master-password/models"
)

type generatorService struct {
	algorithm crypto.Algorithm

	defaultType    models.PasswordType
	defaultCounter uint32

	// discard disposes of a key whose derivation outlived its context.
	discard func(*crypto.MasterKey)

	logger *logger.Logger
}

// NewGeneratorService wires a [GeneratorService] to algorithm. cfg supplies
// the counter and type used when a site leaves them zero.
func NewGeneratorService(algorithm crypto.Algorithm, cfg config.App, logger *logger.Logger) GeneratorService {
	g := &generatorService{
		algorithm:      algorithm,
		defaultType:    cfg.DefaultType,
		defaultCounter: cfg.DefaultCounter,
		discard:        (*crypto.MasterKey).Wipe,
		logger:         logger,
	}
	if !g.defaultType.Valid() {
		g.defaultType = models.DefaultPasswordType
	}
	if g.defaultCounter == 0 {
		g.defaultCounter = models.DefaultCounter
	}
	return g
}

type deriveResult struct {
	key *crypto.MasterKey
	err error
}

func (g *generatorService) DeriveMasterKey(ctx context.Context, userName, masterPassword string) (*crypto.MasterKey, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(userName) == "" {
		return nil, ErrEmptyUserName
	}
	if masterPassword == "" {
		return nil, ErrEmptyMasterPassword
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	done := make(chan deriveResult, 1)
	go func() {
		key, err := g.algorithm.DeriveMasterKey(userName, masterPassword)
		done <- deriveResult{key: key, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			log.Err(res.err).Str("func", "*generatorService.DeriveMasterKey").Msg("master key derivation failed")
			return nil, fmt.Errorf("derive master key: %w", res.err)
		}
		log.Debug().Dur("took", time.Since(start)).Msg("master key derived")
		return res.key, nil

	case <-ctx.Done():
		// scrypt cannot be interrupted; drop its result when it arrives
		go func() {
			if res := <-done; res.key != nil {
				g.discard(res.key)
			}
		}()
		log.Debug().Dur("after", time.Since(start)).Msg("master key derivation abandoned")
		return nil, ctx.Err()
	}
}

func (g *generatorService) GeneratePassword(ctx context.Context, masterKey *crypto.MasterKey, site models.Site) (string, error) {
	log := logger.FromContext(ctx)

	if masterKey == nil {
		return "", ErrNoMasterKey
	}
	if site.SiteName == "" {
		return "", ErrEmptySiteName
	}

	counter := site.Counter
	if counter == 0 {
		counter = g.defaultCounter
	}
	passwordType := site.Type
	if passwordType == 0 {
		passwordType = g.defaultType
	}

	seed, err := g.algorithm.DeriveTemplateSeed(masterKey, site.SiteName, counter)
	if err != nil {
		return "", fmt.Errorf("derive template seed: %w", err)
	}
	defer seed.Wipe()

	password, err := g.algorithm.RenderPassword(seed, passwordType)
	if err != nil {
		return "", fmt.Errorf("render password: %w", err)
	}

	log.Debug().
		Str("site_name", site.SiteName).
		Uint32("counter", counter).
		Stringer("type", passwordType).
		Msg("password generated")

	return password, nil
}

func (g *generatorService) GenerateOnce(ctx context.Context, userName, masterPassword string, site models.Site) (string, error) {
	key, err := g.DeriveMasterKey(ctx, userName, masterPassword)
	if err != nil {
		return "", err
	}
	defer key.Wipe()

	return g.GeneratePassword(ctx, key, site)
}
