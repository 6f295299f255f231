// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"sync"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/listener"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hashlistd/fault"
	"github.com/bitmark-inc/hashlistd/util"
)

// Configuration - configuration file data for RPC setup
type Configuration struct {
	MaximumConnections int      `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener *listener.MultiListener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the JSON RPC server
func Initialise(configuration *Configuration, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	if configuration.MaximumConnections < 1 {
		log.Errorf("invalid maximum connections: %d", configuration.MaximumConnections)
		return fault.MissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Error("missing listen addresses")
		return fault.MissingParameters
	}

	if !util.EnsureFileExists(configuration.Certificate) {
		log.Errorf("certificate: %q does not exist", configuration.Certificate)
		return fault.MissingParameters
	}
	if !util.EnsureFileExists(configuration.PrivateKey) {
		log.Errorf("private key: %q does not exist", configuration.PrivateKey)
		return fault.MissingParameters
	}

	// set up TLS
	keyPair, err := tls.LoadX509KeyPair(configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		log.Errorf("failed to load keypair: %s", err)
		return err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fingerprint := CertificateFingerprint(keyPair.Certificate[0])
	log.Infof("SHA3-256 fingerprint: %x", fingerprint)

	limiter := listener.NewLimiter(configuration.MaximumConnections)

	ml, err := listener.NewMultiListener("rpc", configuration.Listen, tlsConfiguration, limiter, Callback)
	if nil != err {
		log.Errorf("invalid listen addresses: %v", configuration.Listen)
		return err
	}
	globalData.listener = ml

	argument := &serverArgument{
		Log:    log,
		Server: createServer(log, version),
	}
	globalData.listener.Start(argument)

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop the RPC server
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.listener.Stop()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// CertificateFingerprint - compute the fingerprint of a certificate
//
// FreeBSD: openssl x509 -outform DER -in hashlistd.crt | sha3sum -a 256
func CertificateFingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
