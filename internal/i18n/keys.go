package i18n

// MessageKey identifies one UI string. Every supported locale must define
// exactly the keys returned by AllKeys.
type MessageKey string

const (
	NavHome         MessageKey = "navHome"
	NavConsultation MessageKey = "navConsultation"
	NavCollection   MessageKey = "navCollection"
	NavMap          MessageKey = "navMap"
	NavHistory      MessageKey = "navHistory"
	NavLogin        MessageKey = "navLogin"
	NavProfile      MessageKey = "navProfile"
	NavSettings     MessageKey = "navSettings"
	NavLogout       MessageKey = "navLogout"

	HeroTitle          MessageKey = "heroTitle"
	HeroHighlight      MessageKey = "heroHighlight"
	HeroSubtitle       MessageKey = "heroSubtitle"
	HeroCta            MessageKey = "heroCta"
	StatsTitle         MessageKey = "statsTitle"
	StatsSubtitle      MessageKey = "statsSubtitle"
	StatInstruments    MessageKey = "statInstruments"
	StatTypes          MessageKey = "statTypes"
	StatHistory        MessageKey = "statHistory"
	HowItWorksTitle    MessageKey = "howItWorksTitle"
	HowItWorksSubtitle MessageKey = "howItWorksSubtitle"
	Step1Title         MessageKey = "step1Title"
	Step1Desc          MessageKey = "step1Desc"
	Step2Title         MessageKey = "step2Title"
	Step2Desc          MessageKey = "step2Desc"
	Step3Title         MessageKey = "step3Title"
	Step3Desc          MessageKey = "step3Desc"
	TryNow             MessageKey = "tryNow"

	LoginTitle       MessageKey = "loginTitle"
	LoginSubtitle    MessageKey = "loginSubtitle"
	RegisterTitle    MessageKey = "registerTitle"
	RegisterSubtitle MessageKey = "registerSubtitle"
	EmailLabel       MessageKey = "emailLabel"
	PasswordLabel    MessageKey = "passwordLabel"
	NameLabel        MessageKey = "nameLabel"
	LoginButton      MessageKey = "loginButton"
	RegisterButton   MessageKey = "registerButton"
	NoAccount        MessageKey = "noAccount"
	HasAccount       MessageKey = "hasAccount"

	ProfileTitle          MessageKey = "profileTitle"
	MemberSince           MessageKey = "memberSince"
	TotalConsultations    MessageKey = "totalConsultations"
	SettingsTitle         MessageKey = "settingsTitle"
	SettingsAppearance    MessageKey = "settingsAppearance"
	SettingsLanguage      MessageKey = "settingsLanguage"
	SettingsNotifications MessageKey = "settingsNotifications"
	SettingsAccount       MessageKey = "settingsAccount"
	DeleteAccount         MessageKey = "deleteAccount"
	DarkMode              MessageKey = "darkMode"
	EmailNotifications    MessageKey = "emailNotifications"

	CollectionTitle    MessageKey = "collectionTitle"
	CollectionSubtitle MessageKey = "collectionSubtitle"
	SearchPlaceholder  MessageKey = "searchPlaceholder"

	ExpertSystem        MessageKey = "expertSystem"
	StartConsultation   MessageKey = "startConsultation"
	WhatsappAdmin       MessageKey = "whatsappAdmin"
	Location            MessageKey = "location"
	OperatingHours      MessageKey = "operatingHours"
	TicketPrice         MessageKey = "ticketPrice"
	HistoricalValue     MessageKey = "historicalValue"
	RecommendationFound MessageKey = "recommendationFound"

	LoginRequired   MessageKey = "loginRequired"
	LoginSuccess    MessageKey = "loginSuccess"
	LogoutSuccess   MessageKey = "logoutSuccess"
	RegisterSuccess MessageKey = "registerSuccess"

	ErrEmptyCredentials MessageKey = "errEmptyCredentials"
	ErrEmptyFields      MessageKey = "errEmptyFields"
	ErrNameTooShort     MessageKey = "errNameTooShort"
	ErrInvalidEmail     MessageKey = "errInvalidEmail"
	ErrWeakPassword     MessageKey = "errWeakPassword"

	DarkModeDesc           MessageKey = "darkModeDesc"
	LanguageDesc           MessageKey = "languageDesc"
	EmailNotificationsDesc MessageKey = "emailNotificationsDesc"
	DeleteAccountDesc      MessageKey = "deleteAccountDesc"
	DeleteAccountConfirm   MessageKey = "deleteAccountConfirm"
	DeleteAccountWarning   MessageKey = "deleteAccountWarning"
	AccountDeleted         MessageKey = "accountDeleted"
	AccountDeletedDesc     MessageKey = "accountDeletedDesc"
	ThemeLight             MessageKey = "themeLight"
	ThemeDark              MessageKey = "themeDark"
	SettingOn              MessageKey = "settingOn"
	SettingOff             MessageKey = "settingOff"
	SettingsSaved          MessageKey = "settingsSaved"

	ProfileUpdated     MessageKey = "profileUpdated"
	SessionRequired    MessageKey = "sessionRequired"
	ConsultationPrompt MessageKey = "consultationPrompt"
	ConsultationOpened MessageKey = "consultationOpened"
	NoDestinations     MessageKey = "noDestinations"
	FreeEntry          MessageKey = "freeEntry"
	HistoryTitle       MessageKey = "historyTitle"
	HistoryEmpty       MessageKey = "historyEmpty"
	SigningIn          MessageKey = "signingIn"
	SigningUp          MessageKey = "signingUp"
)

func AllKeys() []MessageKey {
	return []MessageKey{
		NavHome, NavConsultation, NavCollection, NavMap, NavHistory, NavLogin, NavProfile, NavSettings, NavLogout,
		HeroTitle, HeroHighlight, HeroSubtitle, HeroCta, StatsTitle, StatsSubtitle, StatInstruments, StatTypes,
		StatHistory, HowItWorksTitle, HowItWorksSubtitle, Step1Title, Step1Desc, Step2Title, Step2Desc,
		Step3Title, Step3Desc, TryNow,
		LoginTitle, LoginSubtitle, RegisterTitle, RegisterSubtitle, EmailLabel, PasswordLabel, NameLabel,
		LoginButton, RegisterButton, NoAccount, HasAccount,
		ProfileTitle, MemberSince, TotalConsultations, SettingsTitle, SettingsAppearance, SettingsLanguage,
		SettingsNotifications, SettingsAccount, DeleteAccount, DarkMode, EmailNotifications,
		CollectionTitle, CollectionSubtitle, SearchPlaceholder,
		ExpertSystem, StartConsultation, WhatsappAdmin, Location, OperatingHours, TicketPrice, HistoricalValue,
		RecommendationFound,
		LoginRequired, LoginSuccess, LogoutSuccess, RegisterSuccess,
		ErrEmptyCredentials, ErrEmptyFields, ErrNameTooShort, ErrInvalidEmail, ErrWeakPassword,
		DarkModeDesc, LanguageDesc, EmailNotificationsDesc, DeleteAccountDesc, DeleteAccountConfirm,
		DeleteAccountWarning, AccountDeleted, AccountDeletedDesc, ThemeLight, ThemeDark, SettingOn, SettingOff,
		SettingsSaved,
		ProfileUpdated, SessionRequired, ConsultationPrompt, ConsultationOpened, NoDestinations, FreeEntry,
		HistoryTitle, HistoryEmpty, SigningIn, SigningUp,
	}
}
