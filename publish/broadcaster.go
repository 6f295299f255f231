// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hashlistd/messagebus"
)

// buffer enough changes to ride out a slow subscriber link
const broadcasterQueueSize = 1000

// relays every committed list change from the internal broadcast
// queue to a set of ZeroMQ PUB sockets
type broadcaster struct {
	log       *logger.L
	addresses []string
}

func (brdc *broadcaster) initialise(addresses []string) error {
	brdc.log = logger.New("broadcaster")
	brdc.addresses = addresses
	return nil
}

// Run - wait for queued change records and publish them
//
// sockets are created and closed here so that they stay on the
// background goroutine for their whole life
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log
	log.Info("starting…")

	sockets := make([]*zmq.Socket, 0, len(brdc.addresses))
	for _, address := range brdc.addresses {
		socket, err := zmq.NewSocket(zmq.PUB)
		if nil != err {
			log.Errorf("create socket: %q  error: %s", address, err)
			continue
		}
		socket.SetLinger(0)
		err = socket.Bind(address)
		if nil != err {
			log.Errorf("bind: %q  error: %s", address, err)
			socket.Close()
			continue
		}
		log.Infof("publishing on: %q", address)
		sockets = append(sockets, socket)
	}

	queue := messagebus.Bus.Broadcast.Chan(broadcasterQueueSize)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case message := <-queue:
			log.Debugf("publish: %q", message.Command)

			// multi-part: command frame then one frame per parameter
			parts := make([]interface{}, 1, 1+len(message.Parameters))
			parts[0] = message.Command
			for _, parameter := range message.Parameters {
				parts = append(parts, parameter)
			}
			for _, socket := range sockets {
				_, err := socket.SendMessage(parts...)
				if nil != err {
					log.Errorf("send: %q  error: %s", message.Command, err)
				}
			}
		}
	}

	log.Info("shutting down…")
	for _, socket := range sockets {
		socket.Close()
	}
	log.Info("stopped")
}
