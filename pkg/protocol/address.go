package protocol

import (
	"crypto/rand"
	"net/url"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// MockScheme selects the in-process broadcast substrate.
const MockScheme = "mock://"

const channelPrefix = "bc-ws-"
const roomCodeLength = 6

// Address is a URL whose scheme selects the substrate.
type Address string

func (a Address) String() string {
	return string(a)
}

func (a Address) Empty() bool {
	return a == ""
}

func (a Address) IsMock() bool {
	return strings.HasPrefix(string(a), MockScheme)
}

// ChannelName is the broadcast channel shared by every connection using this address.
func (a Address) ChannelName() string {
	return channelPrefix + strings.TrimPrefix(string(a), MockScheme)
}

func ParseAddress(input string) (Address, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", errors.New("empty address")
	}

	address := Address(input)
	if address.IsMock() {
		return address, nil
	}

	u, err := url.Parse(input)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse address")
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.Errorf("address %q has no scheme or host", input)
	}

	return address, nil
}

// NewRoomAddress returns a fresh mock:// address with a random base58 room code.
func NewRoomAddress() (Address, error) {
	code := make([]byte, roomCodeLength)
	_, err := rand.Read(code)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate room code")
	}
	return Address(MockScheme + base58.Encode(code)), nil
}
