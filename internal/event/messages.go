package event

import "fmt"

// Notification texts shown to users, in French. The host and the
// participants of an event receive different phrasings of the same change.

func hostStatusMessage(statusID uint, eventName string) string {
	switch statusID {
	case 1:
		return fmt.Sprintf("Votre événement \"%s\" a été validé par un administrateur.", eventName)
	case 2:
		return fmt.Sprintf("Votre événement \"%s\" a été refusé par un administrateur.", eventName)
	case 3:
		return fmt.Sprintf("Votre événement \"%s\" a été annulé par un administrateur.", eventName)
	default:
		return fmt.Sprintf("Votre événement \"%s\" est en cours de traitement.", eventName)
	}
}

func participantStatusMessage(statusID uint, eventName string) string {
	switch statusID {
	case 1:
		return fmt.Sprintf("L'événement \"%s\" auquel vous participez a été validé par un administrateur.", eventName)
	case 2:
		return fmt.Sprintf("L'événement \"%s\" auquel vous participez a été refusé par un administrateur.", eventName)
	case 3:
		return fmt.Sprintf("L'événement \"%s\" auquel vous participez a été annulé par un administrateur.", eventName)
	default:
		return fmt.Sprintf("L'événement \"%s\" auquel vous participez est en cours de traitement.", eventName)
	}
}

func hostDeletedMessage(eventName string) string {
	return fmt.Sprintf("Votre événement \"%s\" a été supprimé.", eventName)
}

func participantDeletedMessage(eventName string) string {
	return fmt.Sprintf("L'événement \"%s\" auquel vous participiez a été supprimé.", eventName)
}

func participantInvitedMessage(eventName string) string {
	return fmt.Sprintf("Vous avez été ajouté à l'événement \"%s\".", eventName)
}
