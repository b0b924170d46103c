package session

import "fmt"

func orderKey(sessionID string) string {
	return fmt.Sprintf(orderKeyFmt, sessionID)
}

func txnKey(sessionID string) string {
	return fmt.Sprintf(txnKeyFmt, sessionID)
}

func lockKey(sessionID string) string {
	return fmt.Sprintf(lockKeyFmt, sessionID)
}
