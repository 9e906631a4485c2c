package fridge

import "strings"

// StorageMethod is where an item is kept: 냉장, 냉동 or 실온.
type StorageMethod string

const (
	StorageFridge   StorageMethod = "냉장"
	StorageFreezer  StorageMethod = "냉동"
	StorageRoomTemp StorageMethod = "실온"
)

var storageCodes = map[StorageMethod]string{
	StorageFridge:   "FRIDGE",
	StorageFreezer:  "FREEZER",
	StorageRoomTemp: "ROOM_TEMP",
}

// ParseStorageMethod resolves a Korean name or English wire code to a
// storage method. Unknown values default to 냉장, matching the draft default.
func ParseStorageMethod(s string) StorageMethod {
	trimmed := strings.TrimSpace(s)
	for m := range storageCodes {
		if trimmed == string(m) {
			return m
		}
	}
	upper := strings.ToUpper(trimmed)
	for m, code := range storageCodes {
		if upper == code {
			return m
		}
	}
	return StorageFridge
}

// Code returns the English wire code sent to the items endpoint.
func (m StorageMethod) Code() string {
	if code, ok := storageCodes[m]; ok {
		return code
	}
	return storageCodes[StorageFridge]
}
