package parameter

// Audio
const (
	// AudioSampleRate is the PCM rate for synthesized tones
	AudioSampleRate = 44100

	// AudioBufferMillis is the speaker buffer length
	AudioBufferMillis = 50

	// AudioGainFloor is where each recipe's gain envelope ends at full volume
	AudioGainFloor = 0.01

	// AudioDefaultVolume is master volume before any settings are applied
	AudioDefaultVolume = 0.7
)
