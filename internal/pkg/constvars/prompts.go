package constvars

// prompts.go collects the instruction templates sent to the external vision
// and chat models. Keeping them in one file makes them easy to tweak without
// touching the orchestration code.

const (
	// AadhaarExtractionPrompt instructs the vision model to return Aadhaar
	// card fields inside an "aadhaar_info" envelope. Absent fields must be
	// null and the output must not be fenced in markdown.
	AadhaarExtractionPrompt = `You are an advanced AI specialist with expertise in extracting data from images using optical character recognition techniques. Your task is to analyze the provided Aadhaar card image and extract the necessary information, returning it in a specified JSON format.
Return the extracted information in the following JSON structure: { "aadhaar_info": { "name": "string", "aadhaar_number": "string", "date_of_birth": "string", "gender": "string", "address": "string or null" }, "source": "image" }
Ensure that the output is valid JSON. If a field is not found in the image, use null for that value. Do not omit any fields from the structure and make sure not to include any markdown in the response.`

	// PrescriptionExtractionPrompt is the prescription counterpart; the
	// medications field is a list of {name, dosage, frequency} objects.
	PrescriptionExtractionPrompt = `You are an advanced AI specialist with expertise in extracting data from images using optical character recognition techniques. Your task is to analyze the provided prescription image and extract the necessary information, returning it in a specified JSON format.
Return the extracted information in the following JSON structure: { "prescription_info": { "patient_name": "string", "doctor_name": "string", "medications": [ { "name": "string", "dosage": "string", "frequency": "string" } ], "date_of_issue": "string", "clinic_address": "string or null" }, "source": "image" }
Ensure that the output is valid JSON. If a field is not found in the image, use null for that value. Do not omit any fields from the structure and make sure not to include any markdown in the response.`

	// FollowupQuestionsPromptFormat embeds the serialized stage-1 answers and
	// asks the chat model for the next round of questions as a JSON array of
	// {"category", "question"} objects.
	FollowupQuestionsPromptFormat = `Based on the following patient responses, determine the next set of questions needed to complete their medical profile:
%s

Provide the next questions as a JSON array in exactly this shape, with no markdown fencing:
[
    {"category": "Category Name", "question": "New question here"}
]`

	// FinalReportPromptFormat embeds both answer rounds and asks for the
	// narrative report.
	FinalReportPromptFormat = `Generate a comprehensive medical report based on the following user responses:

First-stage responses:
%s

Second-stage responses:
%s

Provide a structured and detailed report summarizing the patient's medical history, current condition, lifestyle risks, and potential concerns.`

	// DoctorChatSystemPromptFormat grounds the doctor-facing assistant in the
	// supplied patient context and forbids unsubstantiated claims.
	DoctorChatSystemPromptFormat = `You are a robust AI assistant designed to support doctors in diagnosing patients by providing accurate information based on patient data.
Your task is to assist the doctor with their queries regarding patient information.
Context : %s

Once you have the context, respond to the doctor's query with facts strictly derived from the provided patient information. It's crucial that you do not provide diagnostic recommendations or answers that are not substantiated by the context, as accuracy is paramount to avoid misinformation.

Make sure to verify the context first before responding and clearly indicate whether the information is available or not.

Provide clear and concise responses based solely on the context given and refrain from introducing any assumptions or unverified claims.`
)
