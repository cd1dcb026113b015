package vision

// AnalysisPrompt is the fixed instruction sent with every image. The model
// must answer with a single JSON object carrying exactly these three keys;
// anything else is handled by the tolerant parser downstream.
const AnalysisPrompt = `Analyze the following image of an electronic waste item.
Provide your response ONLY as a valid JSON object with the following keys:
- "device_type": Identify the main type of device (e.g., smartphone, laptop, tablet, monitor, keyboard, mouse, other, unknown). Use lowercase. If unsure, use "unknown".
- "condition_description": Briefly describe the visible physical condition (e.g., scratches, cracks, dents, wear, cleanliness). Be objective.
- "extracted_text": Extract any clearly visible brand name or model number text, if present. If none is clearly visible, use an empty string "".

Example JSON output:
{"device_type": "smartphone", "condition_description": "Screen appears cracked...", "extracted_text": "iPhone"}`
