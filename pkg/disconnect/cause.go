// Package disconnect is the lookup table of call disconnect causes reported
// by the telephony stack.
package disconnect

import (
	"slices"
	"strconv"
	"strings"

	"github.com/arthur-debert/carrierlock/pkg/errors"
)

// Cause is a call disconnect cause code
type Cause int

const (
	// NotValid is the value used before any cause is known
	NotValid Cause = -1
	// NotDisconnected means the call has not been disconnected
	NotDisconnected Cause = 0
	IncomingMissed  Cause = 1
	Normal          Cause = 2
	Local           Cause = 3
	Busy            Cause = 4
	Congestion      Cause = 5
	// MMI is a network MMI code rather than a call
	MMI                                Cause = 6
	InvalidNumber                      Cause = 7
	NumberUnreachable                  Cause = 8
	ServerUnreachable                  Cause = 9
	InvalidCredentials                 Cause = 10
	OutOfNetwork                       Cause = 11
	ServerError                        Cause = 12
	TimedOut                           Cause = 13
	LostSignal                         Cause = 14
	LimitExceeded                      Cause = 15
	IncomingRejected                   Cause = 16
	PowerOff                           Cause = 17
	OutOfService                       Cause = 18
	ICCError                           Cause = 19
	CallBarred                         Cause = 20
	FDNBlocked                         Cause = 21
	CSRestricted                       Cause = 22
	CSRestrictedNormal                 Cause = 23
	CSRestrictedEmergency              Cause = 24
	UnobtainableNumber                 Cause = 25
	CDMALockedUntilPowerCycle          Cause = 26
	CDMADrop                           Cause = 27
	CDMAIntercept                      Cause = 28
	CDMAReorder                        Cause = 29
	CDMASOReject                       Cause = 30
	CDMARetryOrder                     Cause = 31
	CDMAAccessFailure                  Cause = 32
	CDMAPreempted                      Cause = 33
	CDMANotEmergency                   Cause = 34
	CDMAAccessBlocked                  Cause = 35
	ErrorUnspecified                   Cause = 36
	EmergencyOnly                      Cause = 37
	NoPhoneNumberSupplied              Cause = 38
	DialedMMI                          Cause = 39
	VoicemailNumberMissing             Cause = 40
	CDMACallLost                       Cause = 41
	ExitedECM                          Cause = 42
	OutgoingFailure                    Cause = 43
	OutgoingCanceled                   Cause = 44
	IMSMergedSuccessfully              Cause = 45
	DialModifiedToUSSD                 Cause = 46
	DialModifiedToSS                   Cause = 47
	DialModifiedToDial                 Cause = 48
	CDMAAlreadyActivated               Cause = 49
	VideoCallNotAllowedWhileTTYEnabled Cause = 50
	CallPulled                         Cause = 51
	AnsweredElsewhere                  Cause = 52
	MaximumNumberOfCallsReached        Cause = 53
	DataDisabled                       Cause = 54
	DataLimitReached                   Cause = 55
	// 56 is unassigned
	DialedCallForwardingWhileRoaming          Cause = 57
	IMEINotAccepted                           Cause = 58
	WifiLost                                  Cause = 59
	IMSAccessBlocked                          Cause = 60
	LowBattery                                Cause = 61
	DialLowBattery                            Cause = 62
	EmergencyTempFailure                      Cause = 63
	EmergencyPermFailure                      Cause = 64
	NormalUnspecified                         Cause = 65
	DialModifiedToDialVideo                   Cause = 66
	DialVideoModifiedToSS                     Cause = 67
	DialVideoModifiedToUSSD                   Cause = 68
	DialVideoModifiedToDial                   Cause = 69
	DialVideoModifiedToDialVideo              Cause = 70
	IMSSIPAlternateEmergencyCall              Cause = 71
	AlreadyDialing                            Cause = 72
	CantCallWhileRinging                      Cause = 73
	CallingDisabled                           Cause = 74
	TooManyOngoingCalls                       Cause = 75
	OTASPProvisioningInProcess                Cause = 76
	MediaTimeout                              Cause = 77
	EmergencyCallOverWFCNotAvailable          Cause = 78
	WFCServiceNotAvailableInThisLocation      Cause = 79
	QOSUnavailable                            Cause = 80
	RequestedFacilityNotSubscribed            Cause = 81
	IncomingCallsBarredWithinCUG              Cause = 82
	BearerCapabilityUnavailable               Cause = 83
	ServiceOptionNotAvailable                 Cause = 84
	BearerServiceNotImplemented               Cause = 85
	RequestedFacilityNotImplemented           Cause = 86
	OnlyDigitalInformationBearerAvailable     Cause = 87
	ServiceOrOptionNotImplemented             Cause = 88
	InvalidTransactionIdentifier              Cause = 89
	UserNotMemberOfCUG                        Cause = 90
	IncompatibleDestination                   Cause = 91
	InvalidTransitNWSelection                 Cause = 92
	SemanticallyIncorrectMessage              Cause = 93
	InvalidMandatoryInformation               Cause = 94
	MessageTypeNonImplemented                 Cause = 95
	MessageTypeNotCompatibleWithProtocolState Cause = 96
	InformationElementNonExistent             Cause = 97
	ConditionalIEError                        Cause = 98
	MessageNotCompatibleWithProtocolState     Cause = 99
	RecoveryOnTimerExpired                    Cause = 100
	ProtocolErrorUnspecified                  Cause = 101
	InterworkingUnspecified                   Cause = 102
	LocalLowBattery                           Cause = 103
	NoCircuitAvail                            Cause = 104
	NoRouteToDestination                      Cause = 105
	OperatorDeterminedBarring                 Cause = 106
	CallFailNoUserResponding                  Cause = 107
	CallFailNoAnswerFromUser                  Cause = 108
	CallFailDestinationOutOfOrder             Cause = 109
	BearerCapabilityNotAuthorized             Cause = 110
	ChannelUnacceptable                       Cause = 111
	CallRejected                              Cause = 112
	NumberChanged                             Cause = 113
	Preemption                                Cause = 114
	FacilityRejected                          Cause = 115
	RespToStatusEnquiry                       Cause = 116
	NetworkOutOfOrder                         Cause = 117
	TemporaryFailure                          Cause = 118
	SwitchingEquipmentCongestion              Cause = 119
	AccessInformationDiscarded                Cause = 120
	RequestedCircuitOrChannelNotAvailable     Cause = 121
	ResourcesUnavailableOrUnspecified         Cause = 122
	HONotFeasible                             Cause = 123
	NonSelectedUserClearing                   Cause = 124
)

const (
	// MinimumValidValue is the lowest code that denotes a disconnect cause
	MinimumValidValue = NotDisconnected
	// MaximumValidValue is the highest code that denotes a disconnect cause
	MaximumValidValue = NonSelectedUserClearing
)

// names holds the rendering of every cause that has one. NotValid, MMI and
// the unassigned code 56 are absent on purpose and render as invalid.
var names = map[Cause]string{
	NotDisconnected:                           "NOT_DISCONNECTED",
	IncomingMissed:                            "INCOMING_MISSED",
	Normal:                                    "NORMAL",
	Local:                                     "LOCAL",
	Busy:                                      "BUSY",
	Congestion:                                "CONGESTION",
	InvalidNumber:                             "INVALID_NUMBER",
	NumberUnreachable:                         "NUMBER_UNREACHABLE",
	ServerUnreachable:                         "SERVER_UNREACHABLE",
	InvalidCredentials:                        "INVALID_CREDENTIALS",
	OutOfNetwork:                              "OUT_OF_NETWORK",
	ServerError:                               "SERVER_ERROR",
	TimedOut:                                  "TIMED_OUT",
	LostSignal:                                "LOST_SIGNAL",
	LimitExceeded:                             "LIMIT_EXCEEDED",
	IncomingRejected:                          "INCOMING_REJECTED",
	PowerOff:                                  "POWER_OFF",
	OutOfService:                              "OUT_OF_SERVICE",
	ICCError:                                  "ICC_ERROR",
	CallBarred:                                "CALL_BARRED",
	FDNBlocked:                                "FDN_BLOCKED",
	CSRestricted:                              "CS_RESTRICTED",
	CSRestrictedNormal:                        "CS_RESTRICTED_NORMAL",
	CSRestrictedEmergency:                     "CS_RESTRICTED_EMERGENCY",
	UnobtainableNumber:                        "UNOBTAINABLE_NUMBER",
	CDMALockedUntilPowerCycle:                 "CDMA_LOCKED_UNTIL_POWER_CYCLE",
	CDMADrop:                                  "CDMA_DROP",
	CDMAIntercept:                             "CDMA_INTERCEPT",
	CDMAReorder:                               "CDMA_REORDER",
	CDMASOReject:                              "CDMA_SO_REJECT",
	CDMARetryOrder:                            "CDMA_RETRY_ORDER",
	CDMAAccessFailure:                         "CDMA_ACCESS_FAILURE",
	CDMAPreempted:                             "CDMA_PREEMPTED",
	CDMANotEmergency:                          "CDMA_NOT_EMERGENCY",
	CDMAAccessBlocked:                         "CDMA_ACCESS_BLOCKED",
	ErrorUnspecified:                          "ERROR_UNSPECIFIED",
	EmergencyOnly:                             "EMERGENCY_ONLY",
	NoPhoneNumberSupplied:                     "NO_PHONE_NUMBER_SUPPLIED",
	DialedMMI:                                 "DIALED_MMI",
	VoicemailNumberMissing:                    "VOICEMAIL_NUMBER_MISSING",
	CDMACallLost:                              "CDMA_CALL_LOST",
	ExitedECM:                                 "EXITED_ECM",
	OutgoingFailure:                           "OUTGOING_FAILURE",
	OutgoingCanceled:                          "OUTGOING_CANCELED",
	IMSMergedSuccessfully:                     "IMS_MERGED_SUCCESSFULLY",
	DialModifiedToUSSD:                        "DIAL_MODIFIED_TO_USSD",
	DialModifiedToSS:                          "DIAL_MODIFIED_TO_SS",
	DialModifiedToDial:                        "DIAL_MODIFIED_TO_DIAL",
	CDMAAlreadyActivated:                      "CDMA_ALREADY_ACTIVATED",
	VideoCallNotAllowedWhileTTYEnabled:        "VIDEO_CALL_NOT_ALLOWED_WHILE_TTY_ENABLED",
	CallPulled:                                "CALL_PULLED",
	AnsweredElsewhere:                         "ANSWERED_ELSEWHERE",
	MaximumNumberOfCallsReached:               "MAXIMUM_NUMER_OF_CALLS_REACHED",
	DataDisabled:                              "DATA_DISABLED",
	DataLimitReached:                          "DATA_LIMIT_REACHED",
	DialedCallForwardingWhileRoaming:          "DIALED_CALL_FORWARDING_WHILE_ROAMING",
	IMEINotAccepted:                           "IMEI_NOT_ACCEPTED",
	WifiLost:                                  "WIFI_LOST",
	IMSAccessBlocked:                          "IMS_ACCESS_BLOCKED",
	LowBattery:                                "LOW_BATTERY",
	DialLowBattery:                            "DIAL_LOW_BATTERY",
	EmergencyTempFailure:                      "EMERGENCY_TEMP_FAILURE",
	EmergencyPermFailure:                      "EMERGENCY_PERM_FAILURE",
	NormalUnspecified:                         "NORMAL_UNSPECIFIED",
	DialModifiedToDialVideo:                   "DIAL_MODIFIED_TO_DIAL_VIDEO",
	DialVideoModifiedToSS:                     "DIAL_VIDEO_MODIFIED_TO_SS",
	DialVideoModifiedToUSSD:                   "DIAL_VIDEO_MODIFIED_TO_USSD",
	DialVideoModifiedToDial:                   "DIAL_VIDEO_MODIFIED_TO_DIAL",
	DialVideoModifiedToDialVideo:              "DIAL_VIDEO_MODIFIED_TO_DIAL_VIDEO",
	IMSSIPAlternateEmergencyCall:              "IMS_SIP_ALTERNATE_EMERGENCY_CALL",
	AlreadyDialing:                            "ALREADY_DIALING",
	CantCallWhileRinging:                      "CANT_CALL_WHILE_RINGING",
	CallingDisabled:                           "CALLING_DISABLED",
	TooManyOngoingCalls:                       "TOO_MANY_ONGOING_CALLS",
	OTASPProvisioningInProcess:                "OTASP_PROVISIONING_IN_PROCESS",
	MediaTimeout:                              "MEDIA_TIMEOUT",
	EmergencyCallOverWFCNotAvailable:          "EMERGENCY_CALL_OVER_WFC_NOT_AVAILABLE",
	WFCServiceNotAvailableInThisLocation:      "WFC_SERVICE_NOT_AVAILABLE_IN_THIS_LOCATION",
	QOSUnavailable:                            "QOS_UNAVAILABLE",
	RequestedFacilityNotSubscribed:            "REQUESTED_FACILITY_NOT_SUBSCRIBED",
	IncomingCallsBarredWithinCUG:              "INCOMING_CALLS_BARRED_WITHIN_CUG",
	BearerCapabilityUnavailable:               "BEARER_CAPABILITY_UNAVAILABLE",
	ServiceOptionNotAvailable:                 "SERVICE_OPTION_NOT_AVAILABLE",
	BearerServiceNotImplemented:               "BEARER_SERVICE_NOT_IMPLEMENTED",
	RequestedFacilityNotImplemented:           "REQUESTED_FACILITY_NOT_IMPLEMENTED",
	OnlyDigitalInformationBearerAvailable:     "ONLY_DIGITAL_INFORMATION_BEARER_AVAILABLE",
	ServiceOrOptionNotImplemented:             "SERVICE_OR_OPTION_NOT_IMPLEMENTED",
	InvalidTransactionIdentifier:              "INVALID_TRANSACTION_IDENTIFIER",
	UserNotMemberOfCUG:                        "USER_NOT_MEMBER_OF_CUG",
	IncompatibleDestination:                   "INCOMPATIBLE_DESTINATION",
	InvalidTransitNWSelection:                 "INVALID_TRANSIT_NW_SELECTION",
	SemanticallyIncorrectMessage:              "SEMANTICALLY_INCORRECT_MESSAGE",
	InvalidMandatoryInformation:               "INVALID_MANDATORY_INFORMATION",
	MessageTypeNonImplemented:                 "MESSAGE_TYPE_NON_IMPLEMENTED",
	MessageTypeNotCompatibleWithProtocolState: "MESSAGE_TYPE_NOT_COMPATIBLE_WITH_PROTOCOL_STATE",
	InformationElementNonExistent:             "INFORMATION_ELEMENT_NON_EXISTENT",
	ConditionalIEError:                        "CONDITIONAL_IE_ERROR",
	MessageNotCompatibleWithProtocolState:     "MESSAGE_NOT_COMPATIBLE_WITH_PROTOCOL_STATE",
	RecoveryOnTimerExpired:                    "RECOVERY_ON_TIMER_EXPIRED",
	ProtocolErrorUnspecified:                  "PROTOCOL_ERROR_UNSPECIFIED",
	InterworkingUnspecified:                   "INTERWORKING_UNSPECIFIED",
	LocalLowBattery:                           "LOCAL_LOW_BATTERY",
	NoCircuitAvail:                            "NO_CIRCUIT_AVAIL",
	NoRouteToDestination:                      "NO_ROUTE_TO_DESTINATION",
	OperatorDeterminedBarring:                 "OPERATOR_DETERMINED_BARRING",
	CallFailNoUserResponding:                  "CALL_FAIL_NO_USER_RESPONDING",
	CallFailNoAnswerFromUser:                  "CALL_FAIL_NO_ANSWER_FROM_USER",
	CallFailDestinationOutOfOrder:             "CALL_FAIL_DESTINATION_OUT_OF_ORDER",
	BearerCapabilityNotAuthorized:             "BEARER_CAPABILITY_NOT_AUTHORIZED",
	ChannelUnacceptable:                       "CHANNEL_UNACCEPTABLE",
	CallRejected:                              "CALL_REJECTED",
	NumberChanged:                             "NUMBER_CHANGED",
	Preemption:                                "PREEMPTION",
	FacilityRejected:                          "FACILITY_REJECTED",
	RespToStatusEnquiry:                       "RESP_TO_STATUS_ENQUIRY",
	NetworkOutOfOrder:                         "NETWORK_OUT_OF_ORDER",
	TemporaryFailure:                          "TEMPORARY_FAILURE",
	SwitchingEquipmentCongestion:              "SWITCHING_EQUIPMENT_CONGESTION",
	AccessInformationDiscarded:                "ACCESS_INFORMATION_DISCARDED",
	RequestedCircuitOrChannelNotAvailable:     "REQUESTED_CIRCUIT_OR_CHANNEL_NOT_AVAILABLE",
	ResourcesUnavailableOrUnspecified:         "RESOURCES_UNAVAILABLE_OR_UNSPECIFIED",
	HONotFeasible:                             "HO_NOT_FEASIBLE",
	NonSelectedUserClearing:                   "NON_SELECTED_USER_CLEARING",
}

// String returns the upper-snake name of the cause, or "INVALID: <code>"
// for codes without a name
func (c Cause) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return "INVALID: " + strconv.Itoa(int(c))
}

// Valid reports whether c lies in [MinimumValidValue, MaximumValidValue]
func (c Cause) Valid() bool {
	return c >= MinimumValidValue && c <= MaximumValidValue
}

// ToString renders a raw cause code
func ToString(code int) string {
	return Cause(code).String()
}

// All returns every cause that has a name, in ascending order
func All() []Cause {
	causes := make([]Cause, 0, len(names))
	for c := range names {
		causes = append(causes, c)
	}
	slices.Sort(causes)
	return causes
}

// Parse looks a cause up by name or by numeric code. Names are matched
// case-insensitively and '-' is accepted in place of '_'. Codes are
// accepted only when they have a name.
func Parse(s string) (Cause, error) {
	key := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	if code, err := strconv.Atoi(key); err == nil {
		if _, ok := names[Cause(code)]; ok {
			return Cause(code), nil
		}
		return 0, errors.Newf(errors.ErrNotFound, "no disconnect cause with code %d", code).
			WithDetail("code", code)
	}

	if c, ok := byName[key]; ok {
		return c, nil
	}
	return 0, errors.Newf(errors.ErrNotFound, "unknown disconnect cause %q", s).
		WithDetail("name", s)
}

var byName = func() map[string]Cause {
	m := make(map[string]Cause, len(names)+1)
	for c, name := range names {
		m[name] = c
	}
	// Accept the correct spelling as well as the historical one
	m["MAXIMUM_NUMBER_OF_CALLS_REACHED"] = MaximumNumberOfCallsReached
	return m
}()
