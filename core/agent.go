package core

// AgentInfo carries identifying details about an agent used in contexts & events.
// Name is the external identifier; Model names the backing model.
type AgentInfo struct{ Name, Model string }
